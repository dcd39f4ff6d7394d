package domain

import (
	"github.com/shopspring/decimal"

	"bookingnest-payments/pkg/apperror"
)

// Money is a decimal amount paired with a three-letter currency code.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney builds a Money value.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Validate checks the amount is strictly positive.
func (m Money) Validate() error {
	if !m.Amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

// Value renders the amount with exactly two fraction digits, the format
// the gateway expects on the wire.
func (m Money) Value() string {
	return m.Amount.StringFixed(2)
}
