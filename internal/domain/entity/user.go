package entity

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

// LastViewedCap bounds the recently-viewed list: most-recent-first, unique.
const LastViewedCap = 10

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`

	LastViewed []string `json:"last_viewed"`
	SavedItems []string `json:"saved_items"`

	Provider  string    `json:"provider,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) Clone() *User {
	clone := *u
	clone.LastViewed = append([]string(nil), u.LastViewed...)
	clone.SavedItems = append([]string(nil), u.SavedItems...)
	return &clone
}
