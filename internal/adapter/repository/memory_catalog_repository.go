package repository

import (
	"context"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

// Categories and collections are fixed after seeding, so no locking is
// needed beyond the copy on the way out.

type memoryCategoryRepository struct {
	categories []*entity.Category
	bySlug     map[string]*entity.Category
}

func NewMemoryCategoryRepository(seed []*entity.Category) repository.CategoryRepository {
	r := &memoryCategoryRepository{
		bySlug: make(map[string]*entity.Category, len(seed)),
	}
	for _, c := range seed {
		clone := *c
		r.categories = append(r.categories, &clone)
		r.bySlug[clone.Slug] = &clone
	}
	return r
}

func (r *memoryCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	c, ok := r.bySlug[slug]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	clone := *c
	return &clone, nil
}

type memoryCollectionRepository struct {
	collections []*entity.Collection
	bySlug      map[string]*entity.Collection
}

func NewMemoryCollectionRepository(seed []*entity.Collection) repository.CollectionRepository {
	r := &memoryCollectionRepository{
		bySlug: make(map[string]*entity.Collection, len(seed)),
	}
	for _, c := range seed {
		clone := *c
		r.collections = append(r.collections, &clone)
		r.bySlug[clone.Slug] = &clone
	}
	return r
}

func (r *memoryCollectionRepository) List(ctx context.Context) ([]*entity.Collection, error) {
	out := make([]*entity.Collection, 0, len(r.collections))
	for _, c := range r.collections {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryCollectionRepository) GetBySlug(ctx context.Context, slug string) (*entity.Collection, error) {
	c, ok := r.bySlug[slug]
	if !ok {
		return nil, errors.NotFound("Collection", nil)
	}
	clone := *c
	return &clone, nil
}
