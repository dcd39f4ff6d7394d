package service

import (
	"context"

	"bookingnest-payments/internal/core/domain"
	"bookingnest-payments/internal/core/ports"
	"bookingnest-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService. It orchestrates the
// create/capture flow against the gateway and keeps the ledger's
// order -> user bookkeeping best-effort: the gateway owns the money
// movement, so a bookkeeping failure never fails the request.
type OrderServiceImpl struct {
	gateway         ports.PaymentGateway
	ledger          ports.Ledger // nil = bookkeeping disabled
	defaultCurrency string
	log             zerolog.Logger
}

// NewOrderService creates the order flow service.
func NewOrderService(gateway ports.PaymentGateway, ledger ports.Ledger, defaultCurrency string, log zerolog.Logger) *OrderServiceImpl {
	return &OrderServiceImpl{
		gateway:         gateway,
		ledger:          ledger,
		defaultCurrency: defaultCurrency,
		log:             log,
	}
}

// CreateOrder validates the amount and creates a gateway order.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (domain.OrderHandle, error) {
	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	amount := domain.NewMoney(req.Amount, currency)
	if err := amount.Validate(); err != nil {
		return domain.OrderHandle{}, err
	}

	handle, err := s.gateway.CreateOrder(ctx, amount)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", req.UserID).Msg("order creation failed")
		return domain.OrderHandle{}, apperror.ErrOrderCreationFailed(err)
	}

	if s.ledger != nil {
		pending := domain.PendingOrder{
			OrderID: handle.OrderID,
			UserID:  req.UserID,
			Amount:  amount,
		}
		if err := s.ledger.RecordPendingOrder(ctx, pending); err != nil {
			s.log.Warn().Err(err).Str("order_id", handle.OrderID).Msg("failed to record pending order")
		}
	}

	s.log.Info().Str("order_id", handle.OrderID).Str("user_id", req.UserID).
		Str("amount", amount.Value()).Str("currency", currency).Msg("order created")
	return handle, nil
}

// CaptureOrder finalizes an order. A COMPLETED capture credits the user's
// wallet from the recorded pending-order mapping; any other status is
// returned to the caller with the payload attached.
func (s *OrderServiceImpl) CaptureOrder(ctx context.Context, req ports.CaptureOrderRequest) (*ports.CaptureOutcome, error) {
	if req.OrderID == "" {
		return nil, apperror.ErrMissingOrderID()
	}

	result, err := s.gateway.CaptureOrder(ctx, req.OrderID)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", req.OrderID).Msg("capture failed")
		return nil, apperror.ErrCaptureFailed(err)
	}

	if !result.Completed() {
		s.log.Warn().Str("order_id", req.OrderID).Str("status", result.Status).Msg("capture not completed")
		return &ports.CaptureOutcome{Completed: false, Capture: result.Raw}, nil
	}

	s.creditWallet(ctx, req)

	s.log.Info().Str("order_id", req.OrderID).Str("user_id", req.UserID).Msg("order captured")
	return &ports.CaptureOutcome{Completed: true, Capture: result.Raw}, nil
}

// creditWallet applies the recorded order amount to the user's wallet.
func (s *OrderServiceImpl) creditWallet(ctx context.Context, req ports.CaptureOrderRequest) {
	if s.ledger == nil {
		return
	}

	pending, err := s.ledger.PendingOrder(ctx, req.OrderID)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", req.OrderID).Msg("pending order lookup failed")
		return
	}
	if pending == nil {
		s.log.Warn().Str("order_id", req.OrderID).Msg("no pending order recorded, skipping wallet credit")
		return
	}

	if err := s.ledger.CreditWallet(ctx, pending.UserID, pending.Amount); err != nil {
		s.log.Error().Err(err).Str("order_id", req.OrderID).Str("user_id", pending.UserID).
			Msg("wallet credit failed")
		return
	}
	s.log.Info().Str("user_id", pending.UserID).Str("amount", pending.Amount.Value()).
		Msg("wallet credited")
}
