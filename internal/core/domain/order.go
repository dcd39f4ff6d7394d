package domain

import "encoding/json"

// CaptureStatusCompleted is the only capture status treated as success.
// Anything else (PENDING, DECLINED, ...) is surfaced to the caller to
// interpret.
const CaptureStatusCompleted = "COMPLETED"

// OrderHandle identifies a gateway-side order. It is created on a
// successful create call and consumed exactly once by a capture call;
// expiry is owned by the gateway.
type OrderHandle struct {
	OrderID string `json:"orderID"`
}

// CaptureResult carries the gateway's capture outcome together with the
// raw payload for diagnostics.
type CaptureResult struct {
	Status string
	Raw    json.RawMessage
}

// Completed reports whether the capture finalized the order.
func (r *CaptureResult) Completed() bool {
	return r.Status == CaptureStatusCompleted
}

// PendingOrder is the order -> user mapping recorded between create and
// capture so the wallet can be credited once the capture completes.
type PendingOrder struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Amount  Money  `json:"amount"`
}
