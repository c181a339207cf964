package repository

import (
	"shopmart/internal/domain/entity"
)

// SeedCategories returns the mock catalog's category list.
func SeedCategories() []*entity.Category {
	return []*entity.Category{
		{ID: "cat-1", Slug: "electronics", Name: "Electronics", Image: "/images/categories/electronics.jpg"},
		{ID: "cat-2", Slug: "fashion", Name: "Fashion", Image: "/images/categories/fashion.jpg"},
		{ID: "cat-3", Slug: "home", Name: "Home & Living", Image: "/images/categories/home.jpg"},
		{ID: "cat-4", Slug: "sports", Name: "Sports & Outdoors", Image: "/images/categories/sports.jpg"},
		{ID: "cat-5", Slug: "beauty", Name: "Beauty", Image: "/images/categories/beauty.jpg"},
	}
}

// SeedCollections returns the mock catalog's curated collections.
func SeedCollections() []*entity.Collection {
	return []*entity.Collection{
		{ID: "col-1", Slug: "summer-sale", Name: "Summer Sale", Image: "/images/collections/summer-sale.jpg"},
		{ID: "col-2", Slug: "new-arrivals", Name: "New Arrivals", Image: "/images/collections/new-arrivals.jpg"},
		{ID: "col-3", Slug: "best-sellers", Name: "Best Sellers", Image: "/images/collections/best-sellers.jpg"},
	}
}

// SeedProducts returns the mock catalog. Prices already reflect any
// discount; OriginalPrice keeps the pre-discount figure for display.
func SeedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID: "prod-1", Slug: "wireless-headphones", Name: "Wireless Headphones",
			Description: "Over-ear wireless headphones with active noise cancellation and 30-hour battery life.",
			Price:       89.99, OriginalPrice: 119.99, Discount: 25,
			Images:       []string{"/images/products/headphones-1.jpg", "/images/products/headphones-2.jpg"},
			CategorySlug: "electronics", CollectionSlug: "best-sellers",
			Rating: 4.7, Stock: 34, Featured: true,
		},
		{
			ID: "prod-2", Slug: "smart-watch-s3", Name: "Smart Watch S3",
			Description: "Fitness tracking, heart-rate monitoring and a week of battery on a single charge.",
			Price:       149.00,
			Images:      []string{"/images/products/watch-1.jpg"},
			CategorySlug: "electronics", CollectionSlug: "new-arrivals",
			Rating: 4.3, Stock: 21, IsNew: true,
		},
		{
			ID: "prod-3", Slug: "portable-speaker", Name: "Portable Bluetooth Speaker",
			Description: "Water-resistant speaker with deep bass and 12 hours of playtime.",
			Price:       39.95, OriginalPrice: 49.95, Discount: 20,
			Images:      []string{"/images/products/speaker-1.jpg"},
			CategorySlug: "electronics", CollectionSlug: "summer-sale",
			Rating: 4.1, Stock: 58,
		},
		{
			ID: "prod-4", Slug: "classic-denim-jacket", Name: "Classic Denim Jacket",
			Description: "Mid-wash denim jacket with a regular fit and button front.",
			Price:       64.50,
			Images:      []string{"/images/products/denim-jacket-1.jpg"},
			CategorySlug: "fashion", CollectionSlug: "best-sellers",
			Rating: 4.5, Stock: 17,
		},
		{
			ID: "prod-5", Slug: "canvas-sneakers", Name: "Canvas Sneakers",
			Description: "Low-top canvas sneakers with a vulcanized rubber sole.",
			Price:       42.00, OriginalPrice: 56.00, Discount: 25,
			Images:      []string{"/images/products/sneakers-1.jpg", "/images/products/sneakers-2.jpg"},
			CategorySlug: "fashion", CollectionSlug: "summer-sale",
			Rating: 3.9, Stock: 43,
		},
		{
			ID: "prod-6", Slug: "linen-shirt", Name: "Linen Shirt",
			Description: "Breathable pure-linen shirt in relaxed fit.",
			Price:       38.00,
			Images:      []string{"/images/products/linen-shirt-1.jpg"},
			CategorySlug: "fashion", CollectionSlug: "new-arrivals",
			Rating: 4.2, Stock: 29, IsNew: true,
		},
		{
			ID: "prod-7", Slug: "ceramic-table-lamp", Name: "Ceramic Table Lamp",
			Description: "Hand-glazed ceramic base with a natural linen shade.",
			Price:       54.90,
			Images:      []string{"/images/products/lamp-1.jpg"},
			CategorySlug: "home", CollectionSlug: "best-sellers",
			Rating: 4.8, Stock: 12, Featured: true,
		},
		{
			ID: "prod-8", Slug: "throw-blanket", Name: "Knitted Throw Blanket",
			Description: "Chunky-knit cotton throw, 130 by 170 centimetres.",
			Price:       34.99, OriginalPrice: 44.99, Discount: 22,
			Images:      []string{"/images/products/blanket-1.jpg"},
			CategorySlug: "home", CollectionSlug: "summer-sale",
			Rating: 4.4, Stock: 26,
		},
		{
			ID: "prod-9", Slug: "stoneware-mug-set", Name: "Stoneware Mug Set",
			Description: "Set of four 350 ml stoneware mugs in assorted glazes.",
			Price:       24.00,
			Images:      []string{"/images/products/mugs-1.jpg"},
			CategorySlug: "home",
			Rating: 5.0, Stock: 61,
		},
		{
			ID: "prod-10", Slug: "yoga-mat-pro", Name: "Yoga Mat Pro",
			Description: "6 mm non-slip mat with alignment markings and carry strap.",
			Price:       29.95,
			Images:      []string{"/images/products/yoga-mat-1.jpg"},
			CategorySlug: "sports", CollectionSlug: "best-sellers",
			Rating: 4.6, Stock: 48,
		},
		{
			ID: "prod-11", Slug: "trail-running-shoes", Name: "Trail Running Shoes",
			Description: "Lightweight trail shoes with aggressive grip and rock plate.",
			Price:       97.50, OriginalPrice: 130.00, Discount: 25,
			Images:      []string{"/images/products/trail-shoes-1.jpg"},
			CategorySlug: "sports", CollectionSlug: "new-arrivals",
			Rating: 4.9, Stock: 9, IsNew: true,
		},
		{
			ID: "prod-12", Slug: "insulated-bottle", Name: "Insulated Steel Bottle",
			Description: "750 ml double-walled bottle, keeps drinks cold for 24 hours.",
			Price:       21.90,
			Images:      []string{"/images/products/bottle-1.jpg"},
			CategorySlug: "sports", CollectionSlug: "summer-sale",
			Rating: 4.0, Stock: 73,
		},
		{
			ID: "prod-13", Slug: "vitamin-c-serum", Name: "Vitamin C Serum",
			Description: "Brightening 15% vitamin C serum with hyaluronic acid.",
			Price:       27.50, OriginalPrice: 32.50, Discount: 15,
			Images:      []string{"/images/products/serum-1.jpg"},
			CategorySlug: "beauty", CollectionSlug: "best-sellers",
			Rating: 4.3, Stock: 38,
		},
		{
			ID: "prod-14", Slug: "silk-pillowcase", Name: "Mulberry Silk Pillowcase",
			Description: "22-momme silk pillowcase, gentle on skin and hair.",
			Price:       45.00,
			Images:      []string{"/images/products/pillowcase-1.jpg"},
			CategorySlug: "beauty", CollectionSlug: "new-arrivals",
			Rating: 4.1, Stock: 19, IsNew: true,
		},
		{
			ID: "prod-15", Slug: "4k-action-camera", Name: "4K Action Camera",
			Description: "Waterproof action camera shooting 4K at 60 fps with image stabilisation.",
			Price:       219.00, OriginalPrice: 259.00, Discount: 15,
			Images:      []string{"/images/products/action-cam-1.jpg", "/images/products/action-cam-2.jpg"},
			CategorySlug: "electronics", CollectionSlug: "best-sellers",
			Rating: 4.4, Stock: 14, Featured: true,
		},
	}
}
