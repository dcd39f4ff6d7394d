package ports

import (
	"context"
	"encoding/json"

	"bookingnest-payments/internal/core/domain"
)

// PaymentGateway wraps all network interaction with the external payment
// processor. No operation retries, none is idempotent at this layer —
// repeating CreateOrder creates a second distinct order. Access tokens are
// never cached: each payout-related operation re-acquires one.
type PaymentGateway interface {
	// CreateOrder builds an intent-to-capture order for the given amount.
	CreateOrder(ctx context.Context, amount domain.Money) (domain.OrderHandle, error)

	// CaptureOrder finalizes a previously created order. A non-COMPLETED
	// status is a normal result for the caller to interpret, not an error.
	CaptureOrder(ctx context.Context, orderID string) (*domain.CaptureResult, error)

	// AcquireAccessToken performs the client-credential exchange against
	// the gateway's token endpoint.
	AcquireAccessToken(ctx context.Context) (string, error)

	// SendPayout submits a single-item payout batch. A response lacking a
	// batch header is returned as a rejection result, not an error.
	SendPayout(ctx context.Context, token string, p PayoutInstruction) (*domain.PayoutResult, error)

	// GetPayoutStatus fetches the raw status payload of a submitted batch.
	GetPayoutStatus(ctx context.Context, token string, batchID string) (json.RawMessage, error)
}

// PayoutInstruction holds everything needed to submit one payout item.
type PayoutInstruction struct {
	RecipientEmail string
	Amount         domain.Money // net amount, after the service fee
	BatchID        string
	ItemID         string
	Note           string
	EmailSubject   string
	EmailMessage   string
}

// Geocoder proxies reverse-geocoding lookups. Lat/lon are forwarded
// verbatim and the upstream payload is returned unmodified.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon string) (json.RawMessage, error)
}
