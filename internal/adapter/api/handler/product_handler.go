package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"shopmart/internal/domain/entity"
	"shopmart/internal/usecase"
	"shopmart/pkg/response"
	"shopmart/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := filterFromQuery(c)
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.List(c.Request().Context(), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	filter := filterFromQuery(c)
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.Search(c.Request().Context(), c.QueryParam("q"), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

// PriceCeiling returns the suggested slider maximum for the catalog or a
// single category.
func (h *ProductHandler) PriceCeiling(c echo.Context) error {
	ceiling, err := h.productUseCase.PriceCeiling(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]float64{"ceiling": ceiling})
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.Categories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *ProductHandler) ListCollections(c echo.Context) error {
	collections, err := h.productUseCase.Collections(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, collections)
}

// filterFromQuery builds the structured catalog query from the request:
// minPrice/maxPrice, comma-separated categories and ratings, sort key.
func filterFromQuery(c echo.Context) entity.FilterConfig {
	filter := entity.FilterConfig{Sort: entity.SortRelevance}

	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil && v > 0 {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil && v > 0 {
		filter.MaxPrice = v
	}

	if raw := c.QueryParam("categories"); raw != "" {
		for _, slug := range strings.Split(raw, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				filter.Categories = append(filter.Categories, slug)
			}
		}
	}

	if raw := c.QueryParam("ratings"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if rating, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				filter.Ratings = append(filter.Ratings, rating)
			}
		}
	}

	switch sort := c.QueryParam("sort"); sort {
	case entity.SortPriceLow, entity.SortPriceHigh, entity.SortRating:
		filter.Sort = sort
	}

	return filter
}
