package service

import "context"

// LineItem is one provider-facing order line. Amounts are fixed-point
// decimal strings ("12.50"), rounded by the caller.
type LineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  string
	Quantity    int
}

// CaptureResult carries the buyer identity as reported by the provider;
// order records are built from this, never from client input.
type CaptureResult struct {
	OrderID    string
	Status     string
	PayerName  string
	PayerEmail string
	Amount     string
}

type PaymentService interface {
	// CreateCheckoutSession builds a redirect-style order with a full
	// line-item breakdown and returns its id.
	CreateCheckoutSession(ctx context.Context, items []LineItem, total string, successURL, cancelURL string) (string, error)

	// CreateOrder opens an amount-only order for the embedded button flow.
	CreateOrder(ctx context.Context, total string, description string) (string, error)

	// CaptureOrder transfers the funds for an approved order.
	CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error)
}
