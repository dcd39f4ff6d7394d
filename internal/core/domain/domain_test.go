package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFee_HundredPesos(t *testing.T) {
	fb, err := ComputeFee(decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	assert.Equal(t, "5.00", fb.ServiceFee.StringFixed(2))
	assert.Equal(t, "95.00", fb.NetPayout.StringFixed(2))
}

func TestComputeFee_RejectsNonPositive(t *testing.T) {
	for _, raw := range []string{"0", "-5", "-0.01"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ComputeFee(decimal.RequireFromString(raw))
			require.Error(t, err)
		})
	}
}

func TestComputeFee_FeePlusNetEqualsGross(t *testing.T) {
	// Fee and net must add back up to the gross amount (rounded to two
	// decimals) within one cent, across awkward fractions.
	oneCent := decimal.RequireFromString("0.01")

	for _, raw := range []string{"0.01", "0.03", "1.99", "33.33", "100.00", "123.456", "9999999.99"} {
		t.Run(raw, func(t *testing.T) {
			gross := decimal.RequireFromString(raw)
			fb, err := ComputeFee(gross)
			require.NoError(t, err)

			sum := fb.ServiceFee.Add(fb.NetPayout)
			diff := sum.Sub(gross.Round(2)).Abs()
			assert.True(t, diff.LessThanOrEqual(oneCent),
				"gross=%s fee=%s net=%s diff=%s", gross, fb.ServiceFee, fb.NetPayout, diff)
		})
	}
}

func TestComputeFee_TwoDecimalPlaces(t *testing.T) {
	fb, err := ComputeFee(decimal.RequireFromString("0.07"))
	require.NoError(t, err)

	// 0.07 * 0.05 = 0.0035 -> rounds to 0.00
	assert.Equal(t, "0.00", fb.ServiceFee.StringFixed(2))
	assert.Equal(t, "0.07", fb.NetPayout.StringFixed(2))
}

func TestMoney_Validate(t *testing.T) {
	assert.NoError(t, NewMoney(decimal.RequireFromString("10.50"), "PHP").Validate())
	assert.Error(t, NewMoney(decimal.Zero, "PHP").Validate())
	assert.Error(t, NewMoney(decimal.RequireFromString("-3"), "PHP").Validate())
}

func TestMoney_Value_TwoFractionDigits(t *testing.T) {
	assert.Equal(t, "100.00", NewMoney(decimal.RequireFromString("100"), "PHP").Value())
	assert.Equal(t, "99.90", NewMoney(decimal.RequireFromString("99.9"), "PHP").Value())
	assert.Equal(t, "0.10", NewMoney(decimal.RequireFromString("0.1"), "USD").Value())
}

func TestCaptureResult_Completed(t *testing.T) {
	completed := &CaptureResult{Status: "COMPLETED", Raw: json.RawMessage(`{}`)}
	pending := &CaptureResult{Status: "PENDING", Raw: json.RawMessage(`{}`)}

	assert.True(t, completed.Completed())
	assert.False(t, pending.Completed())
}

func TestPayoutResult_Rejected(t *testing.T) {
	ok := &PayoutResult{BatchHeader: json.RawMessage(`{"payout_batch_id":"X"}`)}
	rejected := &PayoutResult{Rejection: json.RawMessage(`{"name":"INSUFFICIENT_FUNDS"}`)}

	assert.False(t, ok.Rejected())
	assert.True(t, rejected.Rejected())
}

func TestNewBatchID_UniqueForSameUserAndInstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewBatchID("user-7")
		assert.True(t, strings.HasPrefix(id, "withdraw-user-7-"))
		assert.False(t, seen[id], "batch id collided: %s", id)
		seen[id] = true
	}
}

func TestNewItemID_Prefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewItemID("u1"), "item-u1-"))
}
