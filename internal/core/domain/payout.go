package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PayoutResult is the outcome of submitting a payout batch. Exactly one
// of BatchHeader and Rejection is set: a response without a batch header
// is a gateway-side rejection, not a transport error.
type PayoutResult struct {
	BatchHeader json.RawMessage
	Rejection   json.RawMessage
}

// Rejected reports whether the gateway declined the payout.
func (r *PayoutResult) Rejected() bool {
	return r.BatchHeader == nil
}

// NewBatchID builds a sender batch id for a withdrawal. The random
// suffix keeps rapid repeated withdrawals by the same user from
// colliding within one timestamp unit.
func NewBatchID(userID string) string {
	return fmt.Sprintf("withdraw-%s-%d-%s", userID, time.Now().UnixMilli(), shortID())
}

// NewItemID builds the sender item id for the single item in a batch.
func NewItemID(userID string) string {
	return fmt.Sprintf("item-%s-%d-%s", userID, time.Now().UnixMilli(), shortID())
}

func shortID() string {
	return uuid.NewString()[:8]
}
