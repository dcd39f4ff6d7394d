package redis

import (
	"context"
	"testing"

	"bookingnest-payments/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewLedger(client), s
}

func TestLedger_RecordAndFetchPendingOrder(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	order := domain.PendingOrder{
		OrderID: "ORDER-1",
		UserID:  "user-42",
		Amount:  domain.NewMoney(decimal.RequireFromString("150.00"), "PHP"),
	}

	// Unknown order => nil, nil
	got, err := ledger.PendingOrder(ctx, "ORDER-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, ledger.RecordPendingOrder(ctx, order))

	got, err = ledger.PendingOrder(ctx, "ORDER-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-42", got.UserID)
	assert.True(t, got.Amount.Amount.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "PHP", got.Amount.Currency)
}

func TestLedger_PendingOrderExpires(t *testing.T) {
	ledger, s := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.RecordPendingOrder(ctx, domain.PendingOrder{
		OrderID: "ORDER-2",
		UserID:  "user-1",
		Amount:  domain.NewMoney(decimal.RequireFromString("10"), "PHP"),
	}))

	s.FastForward(pendingOrderTTL * 2)

	got, err := ledger.PendingOrder(ctx, "ORDER-2")
	require.NoError(t, err)
	assert.Nil(t, got, "expired mapping should be gone")
}

func TestLedger_CreditWallet_AccumulatesMinorUnits(t *testing.T) {
	ledger, s := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.CreditWallet(ctx, "user-7", domain.NewMoney(decimal.RequireFromString("150.25"), "PHP")))
	require.NoError(t, ledger.CreditWallet(ctx, "user-7", domain.NewMoney(decimal.RequireFromString("0.75"), "PHP")))

	val, err := s.Get("wallet:user-7")
	require.NoError(t, err)
	assert.Equal(t, "15100", val)
}
