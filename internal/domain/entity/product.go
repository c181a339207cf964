package entity

// Product is a read-only catalog record; the storefront never mutates it.
type Product struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	OriginalPrice  float64  `json:"original_price,omitempty"`
	Discount       int      `json:"discount"`
	Images         []string `json:"images"`
	CategorySlug   string   `json:"category_slug"`
	CollectionSlug string   `json:"collection_slug,omitempty"`
	Rating         float64  `json:"rating"`
	Stock          int      `json:"stock"`
	IsNew          bool     `json:"is_new"`
	Featured       bool     `json:"featured"`
}

type Category struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Collection struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
