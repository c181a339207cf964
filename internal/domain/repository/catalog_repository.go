package repository

import (
	"context"

	"shopmart/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

type CollectionRepository interface {
	List(ctx context.Context) ([]*entity.Collection, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Collection, error)
}
