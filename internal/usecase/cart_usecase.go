package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
	"portafolio/pkg/logger"
)

// CartUseCase owns the session cart: an ordered item list persisted as
// one JSON snapshot per session, rewritten on every mutation.
type CartUseCase struct {
	cartRepo repository.CartRepository
}

func NewCartUseCase(cartRepo repository.CartRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
	}
}

// Get rehydrates the cart for a session. A missing or malformed
// snapshot yields an empty cart, never an error to the caller.
func (uc *CartUseCase) Get(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	raw, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []entity.CartItem{}, nil
	}

	var items []entity.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("Discarding malformed cart snapshot for session %s: %v", sessionID, err)
		return []entity.CartItem{}, nil
	}

	return items, nil
}

// Add inserts the product with qty 1, or increments qty when the same
// product id is already in the cart.
func (uc *CartUseCase) Add(ctx context.Context, sessionID string, product entity.CartItem) ([]entity.CartItem, error) {
	items, err := uc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		product.Qty = 1
		items = append(items, product)
	}

	if err := uc.persist(ctx, sessionID, items); err != nil {
		return nil, err
	}

	return items, nil
}

// Remove deletes the matching item; removing an absent id is a no-op.
func (uc *CartUseCase) Remove(ctx context.Context, sessionID, productID string) ([]entity.CartItem, error) {
	items, err := uc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	remaining := items[:0]
	for _, item := range items {
		if item.ID != productID {
			remaining = append(remaining, item)
		}
	}

	if err := uc.persist(ctx, sessionID, remaining); err != nil {
		return nil, err
	}

	return remaining, nil
}

func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.cartRepo.Delete(ctx, sessionID)
}

func (uc *CartUseCase) persist(ctx context.Context, sessionID string, items []entity.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return uc.cartRepo.Save(ctx, sessionID, raw)
}

func TotalItems(items []entity.CartItem) int {
	total := 0
	for _, item := range items {
		qty := item.Qty
		if qty == 0 {
			qty = 1
		}
		total += qty
	}
	return total
}

// TotalPrice sums price*qty exactly; rounding to currency precision
// happens only at the display and provider boundaries.
func TotalPrice(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		qty := item.Qty
		if qty == 0 {
			qty = 1
		}
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(line)
	}
	return total
}
