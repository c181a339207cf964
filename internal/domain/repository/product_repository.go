package repository

import (
	"context"

	"shopmart/internal/domain/entity"
)

type ProductRepository interface {
	List(ctx context.Context, filter entity.FilterConfig, limit, offset int) ([]*entity.Product, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Search(ctx context.Context, query string, filter entity.FilterConfig, limit, offset int) ([]*entity.Product, int64, error)
}
