package usecase

import (
	"context"
	"strings"
	"time"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

type OrderUseCase struct {
	orderRepo       repository.OrderRepository
	cartRepo        repository.CartRepository
	shippingFee     float64
	taxRate         float64
	processingDelay time.Duration
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	shippingFee, taxRate float64,
	processingDelay time.Duration,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:       orderRepo,
		cartRepo:        cartRepo,
		shippingFee:     shippingFee,
		taxRate:         taxRate,
		processingDelay: processingDelay,
	}
}

type CheckoutInput struct {
	Address    entity.ShippingAddress
	CardNumber string
	CardBrand  string
}

// Checkout snapshots the cart into an order, computes the totals, and
// clears the cart. The card number is reduced to brand + last4 before
// anything is stored.
func (uc *OrderUseCase) Checkout(ctx context.Context, userID string, input CheckoutInput) (*entity.Order, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil || len(cart.Lines) == 0 {
		return nil, errors.BadRequest("Cart is empty", err)
	}

	if err := waitFor(ctx, uc.processingDelay); err != nil {
		return nil, errors.Internal("Checkout cancelled", err)
	}

	totals := cart.Totals(uc.shippingFee, uc.taxRate)

	order := &entity.Order{
		UserID:          userID,
		Lines:           cart.Lines,
		ShippingAddress: input.Address,
		PaymentMethod:   maskCard(input.CardBrand, input.CardNumber),
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          entity.OrderStatusPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.Delete(ctx, userID); err != nil {
		return nil, errors.Internal("Order placed but cart could not be cleared", err)
	}

	return order, nil
}

func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string, page, limit int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) GetByID(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("You don't have access to this order", nil)
	}
	return order, nil
}

// Cancel is allowed only while the order is pending or processing.
func (uc *OrderUseCase) Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Cancellable() {
		return nil, errors.Conflict("Order can no longer be cancelled")
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusCancelled
	return order, nil
}

// AdvanceStatus moves an order one step along the fulfilment chain.
func (uc *OrderUseCase) AdvanceStatus(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, ok := entity.NextStatus(order.Status)
	if !ok {
		return nil, errors.Conflict("Order is in a terminal status")
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}

func maskCard(brand, number string) entity.PaymentMethod {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}

	if brand == "" {
		brand = "card"
	}

	return entity.PaymentMethod{Brand: brand, Last4: last4}
}
