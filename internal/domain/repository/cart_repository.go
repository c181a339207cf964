package repository

import (
	"context"

	"shopmart/internal/domain/entity"
)

type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, userID string) error
}
