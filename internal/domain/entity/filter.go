package entity

const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// FilterConfig is a structured catalog query. MaxPrice <= 0 means unbounded;
// empty Categories/Ratings match everything. Lifecycle is per request.
type FilterConfig struct {
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
	Categories []string `json:"categories"`
	Ratings    []int    `json:"ratings"`
	Sort       string   `json:"sort"`
}
