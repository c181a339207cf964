package entity

import (
	"time"
)

// Session is the server-side record behind a signed session cookie. The
// cookie is a cache; this record is the source of truth.
type Session struct {
	TokenID   string    `json:"token_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
