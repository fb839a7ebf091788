package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
	"portafolio/internal/domain/service"
	"portafolio/pkg/errors"
	"portafolio/pkg/logger"
)

const (
	placeholderImage = "https://placehold.co/400"
	orderDescription = "Compra en Portafolio Channel"
)

// CheckoutUseCase converts a cart into a provider order and, only after
// a confirmed capture, records the sale and clears the cart.
type CheckoutUseCase struct {
	cartUseCase    *CartUseCase
	orderRepo      repository.OrderRepository
	paymentService service.PaymentService
	successURL     string
	cancelURL      string
}

func NewCheckoutUseCase(cartUseCase *CartUseCase, orderRepo repository.OrderRepository, paymentService service.PaymentService, successURL, cancelURL string) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartUseCase:    cartUseCase,
		orderRepo:      orderRepo,
		paymentService: paymentService,
		successURL:     successURL,
		cancelURL:      cancelURL,
	}
}

// CheckoutItem is the wire shape of the legacy session endpoint:
// POST {items: [{title, image?, price, qty?, type}]}.
type CheckoutItem struct {
	Title string  `json:"title" validate:"required"`
	Image string  `json:"image"`
	Price float64 `json:"price" validate:"gte=0"`
	Qty   int     `json:"qty"`
	Type  string  `json:"type"`
}

// BuildOrderRequest turns cart lines into the provider payload: 2-dp
// unit amounts, a type-derived description, and a placeholder image for
// lines without one.
func BuildOrderRequest(items []CheckoutItem) ([]service.LineItem, string) {
	lines := make([]service.LineItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		qty := item.Qty
		if qty == 0 {
			qty = 1
		}

		description := "Producto Físico"
		if item.Type == entity.ProductTypeDigital {
			description = "Producto Digital"
		}

		image := item.Image
		if image == "" {
			image = placeholderImage
		}

		price := decimal.NewFromFloat(item.Price)
		lines = append(lines, service.LineItem{
			Name:        item.Title,
			Description: description,
			ImageURL:    image,
			UnitAmount:  price.StringFixed(2),
			Quantity:    qty,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}

	return lines, total.StringFixed(2)
}

// CreateSession implements the redirect variant: the client posts its
// line items and receives a session id to redirect with. The cart is
// untouched on failure.
func (uc *CheckoutUseCase) CreateSession(ctx context.Context, items []CheckoutItem) (string, error) {
	if len(items) == 0 {
		return "", errors.BadRequest("No items to check out", nil)
	}

	lines, total := BuildOrderRequest(items)
	sessionID, err := uc.paymentService.CreateCheckoutSession(ctx, lines, total, uc.successURL, uc.cancelURL)
	if err != nil {
		return "", errors.PaymentFailed("Failed to create checkout session", err)
	}

	return sessionID, nil
}

// CreateOrder implements the embedded button variant: an amount-only
// provider order for the current cart total.
func (uc *CheckoutUseCase) CreateOrder(ctx context.Context, cartSessionID string) (string, error) {
	items, err := uc.cartUseCase.Get(ctx, cartSessionID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", errors.BadRequest("Cart is empty", nil)
	}

	total := TotalPrice(items).StringFixed(2)
	orderID, err := uc.paymentService.CreateOrder(ctx, total, orderDescription)
	if err != nil {
		return "", errors.PaymentFailed("Failed to create payment order", err)
	}

	return orderID, nil
}

// CaptureAndRecord captures an approved order. Only an explicit capture
// success writes the order record and clears the cart; a failed write
// after capture is logged, never rolled back.
func (uc *CheckoutUseCase) CaptureAndRecord(ctx context.Context, cartSessionID, orderID string) (*entity.Order, error) {
	items, err := uc.cartUseCase.Get(ctx, cartSessionID)
	if err != nil {
		return nil, err
	}

	capture, err := uc.paymentService.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, errors.PaymentFailed("Payment could not be completed", err)
	}

	total, _ := TotalPrice(items).Round(2).Float64()
	order := &entity.Order{
		BuyerName: capture.PayerName,
		Email:     capture.PayerEmail,
		Total:     total,
		Items:     append([]entity.CartItem(nil), items...),
		Date:      time.Now(),
		PaymentID: capture.OrderID,
		Status:    entity.OrderStatusPaid,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// Funds are already captured; the missing record is a known gap.
		logger.Error("Order write failed after capture %s: %v", capture.OrderID, err)
	}

	if err := uc.cartUseCase.Clear(ctx, cartSessionID); err != nil {
		logger.Warn("Failed to clear cart %s after checkout: %v", cartSessionID, err)
	}

	return order, nil
}
