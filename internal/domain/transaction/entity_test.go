//go:build unit

package transaction_test

import (
	"testing"

	"fuelstation/internal/domain/transaction"
	"fuelstation/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TransactionBuilder)
	errIs  error
}

func TestNewTransaction(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewTransactionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		// 70 liters at 6.50 per liter
		assert.Equal(t, "455.00", actual.Total().StringFixed(2))
		assert.Equal(t, transaction.PaymentCard, actual.PaymentMethod())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero volume",
				mutate: func(b *builder.TransactionBuilder) { b.Volume = decimal.Zero },
				errIs:  transaction.ErrInvalidVolume,
			},
			{
				name:   "negative volume",
				mutate: func(b *builder.TransactionBuilder) { b.Volume = decimal.RequireFromString("-1") },
				errIs:  transaction.ErrInvalidVolume,
			},
			{
				name:   "zero unit price",
				mutate: func(b *builder.TransactionBuilder) { b.UnitPrice = decimal.Zero },
				errIs:  transaction.ErrInvalidUnitPrice,
			},
			{
				name:   "unknown payment method",
				mutate: func(b *builder.TransactionBuilder) { b.PaymentMethod = "check" },
				errIs:  transaction.ErrInvalidPaymentMethod,
			},
			{
				name:   "cash payment",
				mutate: func(b *builder.TransactionBuilder) { b.PaymentMethod = transaction.PaymentCash },
			},
		})
	})
}

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name      string
		volume    string
		unitPrice string
		total     string
	}{
		{"whole liters", "70.00", "6.50", "455.00"},
		{"fractional liters round half up", "33.33", "6.49", "216.31"},
		{"half cent rounds up", "0.50", "6.49", "3.25"},
		{"tiny purchase", "0.01", "6.50", "0.07"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			total := transaction.ComputeTotal(
				decimal.RequireFromString(c.volume),
				decimal.RequireFromString(c.unitPrice),
			)
			assert.Equal(t, c.total, total.StringFixed(2))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewTransactionBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
