package repository

import (
	"context"
	"sync"
	"time"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

type memoryCartRepository struct {
	mu     sync.RWMutex
	byUser map[string]*entity.Cart
}

func NewMemoryCartRepository() repository.CartRepository {
	return &memoryCartRepository{
		byUser: make(map[string]*entity.Cart),
	}
}

func (r *memoryCartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.byUser[userID]
	if !ok {
		return nil, errors.NotFound("Cart", nil)
	}
	return cart.Clone(), nil
}

func (r *memoryCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.UpdatedAt = time.Now()
	r.byUser[cart.UserID] = cart.Clone()
	return nil
}

func (r *memoryCartRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser, userID)
	return nil
}
