package usecase

import (
	"context"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/internal/domain/service"
)

type ProductUseCase struct {
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	collectionRepo repository.CollectionRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	collectionRepo repository.CollectionRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		collectionRepo: collectionRepo,
	}
}

func (uc *ProductUseCase) List(ctx context.Context, filter entity.FilterConfig, page, limit int) ([]*entity.Product, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(ctx, filter, limit, offset)
}

func (uc *ProductUseCase) Search(ctx context.Context, query string, filter entity.FilterConfig, page, limit int) ([]*entity.Product, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.Search(ctx, query, filter, limit, offset)
}

func (uc *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return uc.productRepo.GetBySlug(ctx, slug)
}

// PriceCeiling suggests a price-slider maximum for the catalog, optionally
// narrowed to one category.
func (uc *ProductUseCase) PriceCeiling(ctx context.Context, categorySlug string) (float64, error) {
	filter := entity.FilterConfig{}
	if categorySlug != "" {
		filter.Categories = []string{categorySlug}
	}

	products, _, err := uc.productRepo.List(ctx, filter, 0, 0)
	if err != nil {
		return 0, err
	}

	return service.SuggestedMaxPrice(products), nil
}

func (uc *ProductUseCase) Categories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *ProductUseCase) Collections(ctx context.Context) ([]*entity.Collection, error) {
	return uc.collectionRepo.List(ctx)
}
