package usecase

import (
	"context"

	"shopmart/internal/infrastructure/google"
)

// GoogleAuthClient is the slice of the OAuth provider the auth use case
// needs; the concrete client lives in infrastructure/google.
type GoogleAuthClient interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*google.Profile, error)
}
