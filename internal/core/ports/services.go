package ports

import (
	"context"
	"encoding/json"

	"bookingnest-payments/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// OrderService defines the deposit order flow.
type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.OrderHandle, error)
	CaptureOrder(ctx context.Context, req CaptureOrderRequest) (*CaptureOutcome, error)
}

// CreateOrderRequest holds validated input for order creation.
type CreateOrderRequest struct {
	Amount   decimal.Decimal
	Currency string // empty = configured default
	UserID   string
}

// CaptureOrderRequest holds input for order capture.
type CaptureOrderRequest struct {
	OrderID string
	UserID  string
}

// CaptureOutcome carries the capture payload. Completed=false means the
// gateway answered but did not finalize the order; the payload is attached
// for diagnostics either way.
type CaptureOutcome struct {
	Completed bool
	Capture   json.RawMessage
}

// WithdrawalService defines the payout withdrawal flow.
type WithdrawalService interface {
	Withdraw(ctx context.Context, req WithdrawalRequest) (*WithdrawalOutcome, error)
	PayoutStatus(ctx context.Context, batchID string) (json.RawMessage, error)
}

// WithdrawalRequest holds input for a withdrawal.
type WithdrawalRequest struct {
	Email  string
	Amount decimal.Decimal
	UserID string
}

// WithdrawalOutcome is either an accepted batch (with the fee breakdown)
// or the gateway's verbatim rejection payload.
type WithdrawalOutcome struct {
	Batch        json.RawMessage
	Rejection    json.RawMessage
	ServiceFee   string
	PayoutAmount string
}

// Rejected reports whether the gateway declined the payout.
func (o *WithdrawalOutcome) Rejected() bool {
	return o.Rejection != nil
}
