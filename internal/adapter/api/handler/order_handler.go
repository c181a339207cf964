package handler

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/domain/entity"
	"shopmart/internal/usecase"
	"shopmart/pkg/errors"
	"shopmart/pkg/response"
	"shopmart/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type checkoutRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"omitempty,e164"`

	CardNumber string `json:"card_number" validate:"required,min=12"`
	CardBrand  string `json:"card_brand"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Checkout(c.Request().Context(), uid, usecase.CheckoutInput{
		Address: entity.ShippingAddress{
			FullName:   req.FullName,
			Street:     req.Street,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			Country:    req.Country,
			Phone:      req.Phone,
		},
		CardNumber: req.CardNumber,
		CardBrand:  req.CardBrand,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListByUser(c.Request().Context(), uid, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.GetByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Cancel(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

// AdvanceOrder is an admin operation stepping the fulfilment chain.
func (h *OrderHandler) AdvanceOrder(c echo.Context) error {
	order, err := h.orderUseCase.AdvanceStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}
