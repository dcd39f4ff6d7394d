package ports

import (
	"context"

	"bookingnest-payments/internal/core/domain"
)

// Ledger records the order -> user mapping and wallet credits that the
// gateway itself does not track. A nil Ledger disables bookkeeping.
type Ledger interface {
	// RecordPendingOrder stores the mapping before the order is captured.
	RecordPendingOrder(ctx context.Context, order domain.PendingOrder) error

	// PendingOrder returns the stored mapping, or nil if unknown.
	PendingOrder(ctx context.Context, orderID string) (*domain.PendingOrder, error)

	// CreditWallet adds funds to the user's wallet after a completed capture.
	CreditWallet(ctx context.Context, userID string, amount domain.Money) error
}
