package domain

import (
	"github.com/shopspring/decimal"

	"bookingnest-payments/pkg/apperror"
)

// serviceFeeRate is the flat platform fee applied to every withdrawal.
var serviceFeeRate = decimal.NewFromFloat(0.05)

// FeeBreakdown is the result of applying the service fee to a gross
// withdrawal amount. ServiceFee + NetPayout equals Gross within one cent.
type FeeBreakdown struct {
	Gross      decimal.Decimal
	ServiceFee decimal.Decimal
	NetPayout  decimal.Decimal
}

// ComputeFee derives the service fee and net payout from a gross amount.
// Both figures are rounded to two decimal places. Fails if gross <= 0.
func ComputeFee(gross decimal.Decimal) (FeeBreakdown, error) {
	if !gross.IsPositive() {
		return FeeBreakdown{}, apperror.ErrInvalidAmount()
	}

	fee := gross.Mul(serviceFeeRate).Round(2)
	net := gross.Sub(fee).Round(2)

	return FeeBreakdown{
		Gross:      gross,
		ServiceFee: fee,
		NetPayout:  net,
	}, nil
}
