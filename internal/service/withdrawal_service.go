package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bookingnest-payments/internal/core/domain"
	"bookingnest-payments/internal/core/ports"
	"bookingnest-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

const withdrawalEmailSubject = "BookingNest Withdrawal"

// WithdrawalServiceImpl implements ports.WithdrawalService: validate the
// request, compute the service fee, acquire a fresh gateway token and
// submit a single-item payout batch. Nothing is retried; every failure
// surfaces to the caller on first occurrence.
type WithdrawalServiceImpl struct {
	gateway  ports.PaymentGateway
	currency string
	log      zerolog.Logger
}

// NewWithdrawalService creates the withdrawal flow service.
func NewWithdrawalService(gateway ports.PaymentGateway, currency string, log zerolog.Logger) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		gateway:  gateway,
		currency: currency,
		log:      log,
	}
}

// Withdraw sends the net amount (gross minus the 5% service fee) to the
// recipient's PayPal account.
func (s *WithdrawalServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawalRequest) (*ports.WithdrawalOutcome, error) {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, apperror.ErrInvalidEmail()
	}

	fee, err := domain.ComputeFee(req.Amount)
	if err != nil {
		return nil, err
	}

	token, err := s.gateway.AcquireAccessToken(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", req.UserID).Msg("gateway auth failed")
		return nil, apperror.ErrAuthFailed(err)
	}

	net := domain.NewMoney(fee.NetPayout, s.currency)
	feeStr := fee.ServiceFee.StringFixed(2)
	netStr := fee.NetPayout.StringFixed(2)

	s.log.Info().Str("user_id", req.UserID).Str("service_fee", feeStr).
		Str("payout_amount", netStr).Msg("sending payout")

	result, err := s.gateway.SendPayout(ctx, token, ports.PayoutInstruction{
		RecipientEmail: req.Email,
		Amount:         net,
		BatchID:        domain.NewBatchID(req.UserID),
		ItemID:         domain.NewItemID(req.UserID),
		Note:           fmt.Sprintf("Withdrawal after %s %s service fee.", feeStr, s.currency),
		EmailSubject:   withdrawalEmailSubject,
		EmailMessage: fmt.Sprintf("You have received %s %s. A service fee of %s %s was deducted.",
			netStr, s.currency, feeStr, s.currency),
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", req.UserID).Msg("payout failed")
		return nil, apperror.ErrPayoutFailed(err)
	}

	if result.Rejected() {
		s.log.Warn().Str("user_id", req.UserID).RawJSON("rejection", result.Rejection).
			Msg("payout rejected by gateway")
		return &ports.WithdrawalOutcome{Rejection: result.Rejection}, nil
	}

	return &ports.WithdrawalOutcome{
		Batch:        result.BatchHeader,
		ServiceFee:   feeStr,
		PayoutAmount: netStr,
	}, nil
}

// PayoutStatus fetches the raw status of a previously submitted batch.
func (s *WithdrawalServiceImpl) PayoutStatus(ctx context.Context, batchID string) (json.RawMessage, error) {
	token, err := s.gateway.AcquireAccessToken(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("batch_id", batchID).Msg("gateway auth failed")
		return nil, apperror.ErrPayoutStatusFailed(err)
	}

	raw, err := s.gateway.GetPayoutStatus(ctx, token, batchID)
	if err != nil {
		s.log.Error().Err(err).Str("batch_id", batchID).Msg("payout status fetch failed")
		return nil, apperror.ErrPayoutStatusFailed(err)
	}
	return raw, nil
}
