package service

import (
	"math"
	"sort"

	"shopmart/internal/domain/entity"
)

// ApplyFilter narrows and orders a product list according to the config.
// Price bounds are inclusive; MaxPrice <= 0 means no upper bound. Rating
// buckets use floor(rating), so a 4.9-rated product falls in bucket 4.
// Relevance leaves the retained input order unchanged.
func ApplyFilter(products []*entity.Product, filter entity.FilterConfig) []*entity.Product {
	retained := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, filter) {
			continue
		}
		retained = append(retained, p)
	}

	switch filter.Sort {
	case entity.SortPriceLow:
		sort.SliceStable(retained, func(i, j int) bool {
			return retained[i].Price < retained[j].Price
		})
	case entity.SortPriceHigh:
		sort.SliceStable(retained, func(i, j int) bool {
			return retained[i].Price > retained[j].Price
		})
	case entity.SortRating:
		sort.SliceStable(retained, func(i, j int) bool {
			return retained[i].Rating > retained[j].Rating
		})
	}

	return retained
}

func matches(p *entity.Product, filter entity.FilterConfig) bool {
	if p.Price < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
		return false
	}

	if len(filter.Categories) > 0 && !containsString(filter.Categories, p.CategorySlug) {
		return false
	}

	if len(filter.Ratings) > 0 && !containsInt(filter.Ratings, int(math.Floor(p.Rating))) {
		return false
	}

	return true
}

// SuggestedMaxPrice computes a slider ceiling for a product list: the
// maximum price rounded up to the nearest 10 when at most 50, nearest 50
// when at most 200, otherwise nearest 100. Empty lists default to 1000.
func SuggestedMaxPrice(products []*entity.Product) float64 {
	if len(products) == 0 {
		return 1000
	}

	var max float64
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}

	switch {
	case max <= 50:
		return math.Ceil(max/10) * 10
	case max <= 200:
		return math.Ceil(max/50) * 50
	default:
		return math.Ceil(max/100) * 100
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
