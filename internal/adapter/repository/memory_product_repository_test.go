package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmart/internal/domain/entity"
	"shopmart/pkg/errors"
)

func TestListAppliesFilterAndPagination(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())
	ctx := context.Background()

	all, total, err := repo.List(ctx, entity.FilterConfig{Sort: entity.SortRelevance}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(len(all)), total)

	electronics, _, err := repo.List(ctx, entity.FilterConfig{
		Categories: []string{"electronics"},
		Sort:       entity.SortRelevance,
	}, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, electronics)
	for _, p := range electronics {
		assert.Equal(t, "electronics", p.CategorySlug)
	}

	// Pagination: two pages of two never overlap.
	page1, _, err := repo.List(ctx, entity.FilterConfig{Sort: entity.SortRelevance}, 2, 0)
	require.NoError(t, err)
	page2, _, err := repo.List(ctx, entity.FilterConfig{Sort: entity.SortRelevance}, 2, 2)
	require.NoError(t, err)

	require.Len(t, page1, 2)
	require.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
	assert.NotEqual(t, page1[1].ID, page2[1].ID)

	// Offset past the end yields an empty page, not an error.
	empty, _, err := repo.List(ctx, entity.FilterConfig{Sort: entity.SortRelevance}, 10, 1000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetBySlugAndByID(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())
	ctx := context.Background()

	bySlug, err := repo.GetBySlug(ctx, "wireless-headphones")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", bySlug.ID)

	byID, err := repo.GetByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "wireless-headphones", byID.Slug)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())
	ctx := context.Background()

	byName, _, err := repo.Search(ctx, "headphones", entity.FilterConfig{Sort: entity.SortRelevance}, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, byName)
	assert.Equal(t, "prod-1", byName[0].ID)

	byDescription, _, err := repo.Search(ctx, "noise cancellation", entity.FilterConfig{Sort: entity.SortRelevance}, 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, byDescription)

	none, total, err := repo.Search(ctx, "zzzz-no-such-product", entity.FilterConfig{Sort: entity.SortRelevance}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, total)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())

	upper, _, err := repo.Search(context.Background(), "HEADPHONES", entity.FilterConfig{Sort: entity.SortRelevance}, 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, upper)
}

func TestListReturnsClones(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())
	ctx := context.Background()

	first, _, err := repo.List(ctx, entity.FilterConfig{Sort: entity.SortRelevance}, 1, 0)
	require.NoError(t, err)
	require.Len(t, first, 1)

	first[0].Name = "mutated"

	again, err := repo.GetByID(ctx, first[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Name)
}
