package repository

import (
	"context"
	"strings"
	"sync"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/internal/domain/service"
	"shopmart/pkg/errors"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
	byID     map[string]*entity.Product
	bySlug   map[string]*entity.Product
}

func NewMemoryProductRepository(seed []*entity.Product) repository.ProductRepository {
	r := &memoryProductRepository{
		products: make([]*entity.Product, 0, len(seed)),
		byID:     make(map[string]*entity.Product, len(seed)),
		bySlug:   make(map[string]*entity.Product, len(seed)),
	}
	for _, p := range seed {
		clone := *p
		r.products = append(r.products, &clone)
		r.byID[clone.ID] = &clone
		r.bySlug[clone.Slug] = &clone
	}
	return r
}

func (r *memoryProductRepository) List(ctx context.Context, filter entity.FilterConfig, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	retained := service.ApplyFilter(r.products, filter)
	return paginateProducts(retained, limit, offset)
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}

	clone := *p
	return &clone, nil
}

func (r *memoryProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.bySlug[slug]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}

	clone := *p
	return &clone, nil
}

func (r *memoryProductRepository) Search(ctx context.Context, query string, filter entity.FilterConfig, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matched = append(matched, p)
		}
	}

	retained := service.ApplyFilter(matched, filter)
	return paginateProducts(retained, limit, offset)
}

func paginateProducts(products []*entity.Product, limit, offset int) ([]*entity.Product, int64, error) {
	total := int64(len(products))

	if offset >= len(products) {
		return []*entity.Product{}, total, nil
	}

	end := len(products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]*entity.Product, 0, end-offset)
	for _, p := range products[offset:end] {
		clone := *p
		page = append(page, &clone)
	}
	return page, total, nil
}
