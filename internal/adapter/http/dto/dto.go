package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the request body for POST /create-order.
// Amount accepts a JSON number or a numeric string.
type CreateOrderRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty" binding:"omitempty,currency_code"`
	UserID   string          `json:"userId"`
}

// CaptureOrderRequest is the request body for POST /capture-order.
type CaptureOrderRequest struct {
	OrderID string `json:"orderID"`
	UserID  string `json:"userId"`
}

// WithdrawRequest is the request body for POST /withdraw.
type WithdrawRequest struct {
	Email  string          `json:"email"`
	Amount decimal.Decimal `json:"amount"`
	UserID string          `json:"userId"`
}

// CreateOrderResponse is the response body for a created order.
type CreateOrderResponse struct {
	OrderID string `json:"orderID"`
}

// CaptureOrderResponse is the response body for a completed capture.
type CaptureOrderResponse struct {
	Success bool            `json:"success"`
	Capture json.RawMessage `json:"capture"`
}

// CaptureIncompleteResponse is the 400 body for a non-COMPLETED capture;
// the gateway payload is attached for diagnostics.
type CaptureIncompleteResponse struct {
	Error   string          `json:"error"`
	Capture json.RawMessage `json:"capture"`
}

// WithdrawResponse is the response body for an accepted payout batch.
type WithdrawResponse struct {
	Success      bool            `json:"success"`
	Batch        json.RawMessage `json:"batch"`
	ServiceFee   string          `json:"serviceFee"`
	PayoutAmount string          `json:"payoutAmount"`
}
