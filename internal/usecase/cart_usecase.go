package usecase

import (
	"context"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/internal/infrastructure/event"
	"shopmart/pkg/errors"
	"shopmart/pkg/logger"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	shippingFee float64
	taxRate     float64
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	shippingFee, taxRate float64,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		shippingFee: shippingFee,
		taxRate:     taxRate,
	}
}

// SubscribeLogout clears a user's cart when their session ends.
func (uc *CartUseCase) SubscribeLogout(bus *event.Bus) {
	bus.SubscribeLogout(func(e event.LogoutEvent) {
		if err := uc.Clear(context.Background(), e.UserID); err != nil {
			logger.Warn("Failed to clear cart on logout for %s: %v", e.UserID, err)
		}
	})
}

// Get returns the cart (empty if none exists yet) and its derived totals.
func (uc *CartUseCase) Get(ctx context.Context, userID string) (*entity.Cart, entity.CartTotals, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, entity.CartTotals{}, err
		}
		cart = &entity.Cart{UserID: userID}
	}

	return cart, cart.Totals(uc.shippingFee, uc.taxRate), nil
}

// AddItem puts a product in the cart: an existing line's quantity grows,
// otherwise a new line is appended with the product snapshot.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, entity.CartTotals, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, entity.CartTotals{}, err
	}

	cart, _, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, entity.CartTotals{}, err
	}

	found := false
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			if cart.Lines[i].Quantity+quantity > product.Stock {
				return nil, entity.CartTotals{}, errors.BadRequest("Insufficient stock", nil)
			}
			cart.Lines[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		if quantity > product.Stock {
			return nil, entity.CartTotals{}, errors.BadRequest("Insufficient stock", nil)
		}
		cart.Lines = append(cart.Lines, entity.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Images:    product.Images,
			Stock:     product.Stock,
			Quantity:  quantity,
		})
	}

	return uc.persist(ctx, cart)
}

// SetQuantity adjusts a line; zero or less removes it.
func (uc *CartUseCase) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, entity.CartTotals, error) {
	if quantity <= 0 {
		return uc.RemoveItem(ctx, userID, productID)
	}

	cart, _, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, entity.CartTotals{}, err
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID != productID {
			continue
		}
		if quantity > cart.Lines[i].Stock {
			return nil, entity.CartTotals{}, errors.BadRequest("Insufficient stock", nil)
		}
		cart.Lines[i].Quantity = quantity
		return uc.persist(ctx, cart)
	}

	return nil, entity.CartTotals{}, errors.NotFound("Cart line", nil)
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, entity.CartTotals, error) {
	cart, _, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, entity.CartTotals{}, err
	}

	lines := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	cart.Lines = lines

	return uc.persist(ctx, cart)
}

// Clear empties the cart and purges the persisted entry.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Delete(ctx, userID)
}

func (uc *CartUseCase) persist(ctx context.Context, cart *entity.Cart) (*entity.Cart, entity.CartTotals, error) {
	if len(cart.Lines) == 0 {
		// An empty cart keeps no persisted entry.
		if err := uc.cartRepo.Delete(ctx, cart.UserID); err != nil {
			return nil, entity.CartTotals{}, err
		}
		return cart, cart.Totals(uc.shippingFee, uc.taxRate), nil
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, entity.CartTotals{}, err
	}
	return cart, cart.Totals(uc.shippingFee, uc.taxRate), nil
}
