package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string // lowercased email -> id
}

func NewMemoryUserRepository() repository.UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return errors.Conflict("Email already in use")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.byID[user.ID] = user.Clone()
	r.byEmail[email] = user.ID
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user.Clone(), nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return r.byID[id].Clone(), nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return errors.NotFound("User", nil)
	}

	if !strings.EqualFold(existing.Email, user.Email) {
		email := strings.ToLower(user.Email)
		if _, taken := r.byEmail[email]; taken {
			return errors.Conflict("Email already in use")
		}
		delete(r.byEmail, strings.ToLower(existing.Email))
		r.byEmail[email] = user.ID
	}

	user.UpdatedAt = time.Now()
	r.byID[user.ID] = user.Clone()
	return nil
}
