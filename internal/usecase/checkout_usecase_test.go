package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/service"
)

type mockPaymentService struct {
	failCapture bool
	failCreate  bool
	captured    []string
}

func (m *mockPaymentService) CreateCheckoutSession(_ context.Context, _ []service.LineItem, _ string, _, _ string) (string, error) {
	if m.failCreate {
		return "", errors.New("provider down")
	}
	return "sess_123", nil
}

func (m *mockPaymentService) CreateOrder(_ context.Context, _ string, _ string) (string, error) {
	if m.failCreate {
		return "", errors.New("provider down")
	}
	return "order_123", nil
}

func (m *mockPaymentService) CaptureOrder(_ context.Context, orderID string) (*service.CaptureResult, error) {
	if m.failCapture {
		return nil, errors.New("capture declined")
	}
	m.captured = append(m.captured, orderID)
	return &service.CaptureResult{
		OrderID:    orderID,
		Status:     "COMPLETED",
		PayerName:  "Ana",
		PayerEmail: "ana@example.com",
		Amount:     "25.00",
	}, nil
}

type mockOrderRepo struct {
	orders []*entity.Order
}

func (m *mockOrderRepo) Create(_ context.Context, order *entity.Order) error {
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	return m.orders, nil
}

func newCheckoutFixture(payment *mockPaymentService) (*CheckoutUseCase, *CartUseCase, *mockOrderRepo) {
	cartUC := NewCartUseCase(newMockCartRepo())
	orderRepo := &mockOrderRepo{}
	uc := NewCheckoutUseCase(cartUC, orderRepo, payment, "http://localhost/success", "http://localhost/cancel")
	return uc, cartUC, orderRepo
}

func TestBuildOrderRequest(t *testing.T) {
	lines, total := BuildOrderRequest([]CheckoutItem{
		{Title: "Poster", Price: 10, Qty: 2, Type: entity.ProductTypeFisico, Image: "http://img/poster.png"},
		{Title: "Ebook", Price: 5.5, Type: entity.ProductTypeDigital},
	})

	require.Len(t, lines, 2)
	assert.Equal(t, "25.50", total)

	assert.Equal(t, "10.00", lines[0].UnitAmount)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Producto Físico", lines[0].Description)

	// Missing qty defaults to 1, missing image gets the placeholder.
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, "https://placehold.co/400", lines[1].ImageURL)
	assert.Equal(t, "Producto Digital", lines[1].Description)
}

func TestCheckout_CaptureFailureWritesNoOrder(t *testing.T) {
	payment := &mockPaymentService{failCapture: true}
	uc, cartUC, orderRepo := newCheckoutFixture(payment)
	ctx := context.Background()

	_, err := cartUC.Add(ctx, "s1", entity.CartItem{ID: "a", Title: "A", Price: 25})
	require.NoError(t, err)

	_, err = uc.CaptureAndRecord(ctx, "s1", "order_123")
	require.Error(t, err)

	assert.Empty(t, orderRepo.orders)

	// The cart must survive a failed payment.
	items, err := cartUC.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCheckout_CaptureSuccessRecordsAndClears(t *testing.T) {
	payment := &mockPaymentService{}
	uc, cartUC, orderRepo := newCheckoutFixture(payment)
	ctx := context.Background()

	_, err := cartUC.Add(ctx, "s1", entity.CartItem{ID: "a", Title: "A", Price: 12.5})
	require.NoError(t, err)
	_, err = cartUC.Add(ctx, "s1", entity.CartItem{ID: "a", Title: "A", Price: 12.5})
	require.NoError(t, err)

	order, err := uc.CaptureAndRecord(ctx, "s1", "order_123")
	require.NoError(t, err)

	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, "Ana", order.BuyerName)
	assert.Equal(t, "ana@example.com", order.Email)
	assert.Equal(t, 25.0, order.Total)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, "order_123", order.PaymentID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Qty)

	items, err := cartUC.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckout_CreateOrderEmptyCart(t *testing.T) {
	uc, _, _ := newCheckoutFixture(&mockPaymentService{})

	_, err := uc.CreateOrder(context.Background(), "nobody")
	assert.Error(t, err)
}

func TestCheckout_CreateSessionProviderError(t *testing.T) {
	uc, _, orderRepo := newCheckoutFixture(&mockPaymentService{failCreate: true})

	_, err := uc.CreateSession(context.Background(), []CheckoutItem{{Title: "A", Price: 1}})
	require.Error(t, err)
	assert.Empty(t, orderRepo.orders)
}
