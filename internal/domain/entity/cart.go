package entity

import (
	"time"
)

// CartLine holds a product snapshot plus a quantity. At most one line per
// product id; a quantity reduced to zero removes the line.
type CartLine struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Images    []string `json:"images"`
	Stock     int      `json:"stock"`
	Quantity  int      `json:"quantity"`
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Totals derives the checkout figures from the lines: flat shipping fee when
// the cart is non-empty, tax as a fraction of the subtotal.
func (c *Cart) Totals(shippingFee, taxRate float64) CartTotals {
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	var shipping float64
	if subtotal > 0 {
		shipping = shippingFee
	}

	tax := subtotal * taxRate

	return CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Lines = append([]CartLine(nil), c.Lines...)
	return &clone
}
