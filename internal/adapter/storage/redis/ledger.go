package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookingnest-payments/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// pendingOrderTTL bounds how long an uncaptured order mapping is kept.
// The gateway owns order expiry; this only caps local bookkeeping.
const pendingOrderTTL = 72 * time.Hour

// Ledger implements ports.Ledger using Redis. Pending orders are stored
// as JSON values; wallet balances as integer counters in minor units so
// credits stay atomic under INCRBY.
type Ledger struct {
	client       *goredis.Client
	orderPrefix  string
	walletPrefix string
}

// NewLedger creates a Redis-backed ledger.
func NewLedger(client *goredis.Client) *Ledger {
	return &Ledger{
		client:       client,
		orderPrefix:  "order:",
		walletPrefix: "wallet:",
	}
}

// RecordPendingOrder stores the order -> user mapping until capture.
func (l *Ledger) RecordPendingOrder(ctx context.Context, order domain.PendingOrder) error {
	b, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshaling pending order: %w", err)
	}
	if err := l.client.Set(ctx, l.orderPrefix+order.OrderID, b, pendingOrderTTL).Err(); err != nil {
		return fmt.Errorf("redis pending order set: %w", err)
	}
	return nil
}

// PendingOrder returns the stored mapping, or nil, nil if unknown.
func (l *Ledger) PendingOrder(ctx context.Context, orderID string) (*domain.PendingOrder, error) {
	val, err := l.client.Get(ctx, l.orderPrefix+orderID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis pending order get: %w", err)
	}

	var order domain.PendingOrder
	if err := json.Unmarshal(val, &order); err != nil {
		return nil, fmt.Errorf("unmarshaling pending order: %w", err)
	}
	return &order, nil
}

// CreditWallet adds funds to the user's wallet in minor units.
func (l *Ledger) CreditWallet(ctx context.Context, userID string, amount domain.Money) error {
	minor := amount.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if err := l.client.IncrBy(ctx, l.walletPrefix+userID, minor).Err(); err != nil {
		return fmt.Errorf("redis wallet credit: %w", err)
	}
	return nil
}
