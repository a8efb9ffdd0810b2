package payment_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for _, m := range []payment.Method{payment.Cash, payment.Card, payment.UPI, payment.Wallet} {
		parsed, err := payment.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := payment.ParseMethod("crypto")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Error(t, payment.MethodUnknown.Validate())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []payment.Status{payment.Pending, payment.Completed, payment.Failed} {
		parsed, err := payment.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := payment.ParseStatus("refunded")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPayment(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should record the outcome", func(t *testing.T) {
		outcome := payment.Outcome{
			Status:          payment.Completed,
			TransactionID:   "TXN1",
			GatewayResponse: map[string]string{"cardLast4": "4242"},
		}

		p, err := payment.NewPayment("ORD1", decimal.NewFromInt(670), payment.Card, outcome, now)

		require.NoError(t, err)
		assert.Equal(t, "ORD1", p.OrderID())
		assert.Equal(t, payment.Completed, p.Status())
		assert.Equal(t, "TXN1", p.TransactionID())
		assert.Equal(t, "4242", p.GatewayResponse()["cardLast4"])
		assert.Equal(t, now, p.CreatedAt())
		assert.Zero(t, p.ID())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := payment.NewPayment("", decimal.NewFromInt(-1), payment.MethodUnknown, payment.Outcome{}, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "paymentMethod")
		assert.Contains(t, err.Error(), "paymentStatus")
	})
}

func TestOutcome_IsSuccessful(t *testing.T) {
	assert.True(t, payment.Outcome{Status: payment.Pending}.IsSuccessful())
	assert.True(t, payment.Outcome{Status: payment.Completed}.IsSuccessful())
	assert.False(t, payment.Outcome{Status: payment.Failed}.IsSuccessful())
}
