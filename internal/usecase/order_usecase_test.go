package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "shopmart/internal/adapter/repository"
	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/pkg/errors"
)

func newOrderFixture(t *testing.T) (*OrderUseCase, repository.CartRepository) {
	t.Helper()

	cartRepo := adapter.NewMemoryCartRepository()
	uc := NewOrderUseCase(adapter.NewMemoryOrderRepository(), cartRepo, 10, 0.08, 0)
	return uc, cartRepo
}

func seedCart(t *testing.T, cartRepo repository.CartRepository, userID string) {
	t.Helper()

	cart := &entity.Cart{
		UserID: userID,
		Lines: []entity.CartLine{
			{ProductID: "p1", Name: "Widget", Price: 10, Stock: 50, Quantity: 2},
			{ProductID: "p2", Name: "Gadget", Price: 5, Stock: 50, Quantity: 1},
		},
	}
	require.NoError(t, cartRepo.Save(context.Background(), cart))
}

func checkoutInput() CheckoutInput {
	return CheckoutInput{
		Address: entity.ShippingAddress{
			FullName:   "Jane Doe",
			Street:     "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		},
		CardNumber: "4242 4242 4242 4242",
		CardBrand:  "visa",
	}
}

func TestCheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	uc, cartRepo := newOrderFixture(t)
	ctx := context.Background()
	seedCart(t, cartRepo, "u1")

	order, err := uc.Checkout(ctx, "u1", checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Len(t, order.Lines, 2)
	assert.InDelta(t, 25.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 10.0, order.Shipping, 1e-9)
	assert.InDelta(t, 2.0, order.Tax, 1e-9)
	assert.InDelta(t, 37.0, order.Total, 1e-9)

	assert.Equal(t, "visa", order.PaymentMethod.Brand)
	assert.Equal(t, "4242", order.PaymentMethod.Last4)

	_, err = cartRepo.GetByUserID(ctx, "u1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, _ := newOrderFixture(t)

	_, err := uc.Checkout(context.Background(), "u1", checkoutInput())
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	uc, cartRepo := newOrderFixture(t)
	ctx := context.Background()
	seedCart(t, cartRepo, "u1")

	order, err := uc.Checkout(ctx, "u1", checkoutInput())
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, "u1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = uc.GetByID(ctx, "intruder", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCancelRules(t *testing.T) {
	uc, cartRepo := newOrderFixture(t)
	ctx := context.Background()
	seedCart(t, cartRepo, "u1")

	order, err := uc.Checkout(ctx, "u1", checkoutInput())
	require.NoError(t, err)

	cancelled, err := uc.Cancel(ctx, "u1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// A cancelled order stays cancelled.
	_, err = uc.Cancel(ctx, "u1", order.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))
	_, err = uc.AdvanceStatus(ctx, order.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestAdvanceStatusWalksTheChain(t *testing.T) {
	uc, cartRepo := newOrderFixture(t)
	ctx := context.Background()
	seedCart(t, cartRepo, "u1")

	order, err := uc.Checkout(ctx, "u1", checkoutInput())
	require.NoError(t, err)

	want := []string{
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
	}
	for _, status := range want {
		got, err := uc.AdvanceStatus(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	_, err = uc.AdvanceStatus(ctx, order.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))

	// Delivered orders cannot be cancelled either.
	_, err = uc.Cancel(ctx, "u1", order.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestMaskCardDefaults(t *testing.T) {
	pm := maskCard("", "378282246310005")
	assert.Equal(t, "card", pm.Brand)
	assert.Equal(t, "0005", pm.Last4)
}
