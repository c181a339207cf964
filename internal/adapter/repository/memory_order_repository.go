package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entity.Order
	byUser map[string][]string // userID -> order ids, newest first
}

func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{
		byID:   make(map[string]*entity.Order),
		byUser: make(map[string][]string),
	}
}

func cloneOrder(o *entity.Order) *entity.Order {
	clone := *o
	clone.Lines = append([]entity.CartLine(nil), o.Lines...)
	return &clone
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	r.byID[order.ID] = cloneOrder(order)
	r.byUser[order.UserID] = append([]string{order.ID}, r.byUser[order.UserID]...)
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return cloneOrder(order), nil
}

func (r *memoryOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	total := int64(len(ids))

	if offset >= len(ids) {
		return []*entity.Order{}, total, nil
	}

	end := len(ids)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	orders := make([]*entity.Order, 0, end-offset)
	for _, id := range ids[offset:end] {
		orders = append(orders, cloneOrder(r.byID[id]))
	}
	return orders, total, nil
}

func (r *memoryOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}
