package handler

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/domain/entity"
	"shopmart/internal/usecase"
	"shopmart/pkg/errors"
	"shopmart/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type cartResponse struct {
	Cart   *entity.Cart      `json:"cart"`
	Totals entity.CartTotals `json:"totals"`
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, totals, err := h.cartUseCase.Get(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cartResponse{Cart: cart, Totals: totals})
}

func (h *CartHandler) AddItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, totals, err := h.cartUseCase.AddItem(c.Request().Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cartResponse{Cart: cart, Totals: totals})
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	cart, totals, err := h.cartUseCase.SetQuantity(c.Request().Context(), uid, c.Param("productId"), req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cartResponse{Cart: cart, Totals: totals})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, totals, err := h.cartUseCase.RemoveItem(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cartResponse{Cart: cart, Totals: totals})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.cartUseCase.Clear(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}
