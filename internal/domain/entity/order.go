package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// PaymentMethod is stored masked; the raw card number never leaves checkout.
type PaymentMethod struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Lines           []CartLine      `json:"lines"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NextStatus returns the successor in the fulfilment chain
// pending -> processing -> shipped -> delivered. Terminal states have none.
func NextStatus(status string) (string, bool) {
	switch status {
	case OrderStatusPending:
		return OrderStatusProcessing, true
	case OrderStatusProcessing:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}

// Cancellable reports whether an order may still be cancelled by its owner.
func (o *Order) Cancellable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}
