//go:build unit

package fuel_test

import (
	"testing"

	"fuelstation/internal/domain/fuel"
	"fuelstation/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.FuelBuilder)
	errIs  error
}

func TestNewFuel(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewFuelBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Diesel", actual.Name())
		assert.True(t, actual.Price().Equal(decimal.RequireFromString("6.50")))
		assert.True(t, actual.Volume().Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, actual.IsAvailable())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.FuelBuilder) { b.Name = "" },
				errIs:  fuel.ErrEmptyName,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.FuelBuilder) { b.Price = decimal.Zero },
				errIs:  fuel.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.FuelBuilder) { b.Price = decimal.RequireFromString("-1") },
				errIs:  fuel.ErrInvalidPrice,
			},
			{
				name:   "negative stock",
				mutate: func(b *builder.FuelBuilder) { b.Volume = decimal.RequireFromString("-0.01") },
				errIs:  fuel.ErrNegativeStock,
			},
			{
				name:   "zero stock is allowed",
				mutate: func(b *builder.FuelBuilder) { b.Volume = decimal.Zero },
			},
		})
	})

	t.Run("price is rounded to two decimal places", func(t *testing.T) {
		actual, err := builder.NewFuelBuilder().
			With(func(b *builder.FuelBuilder) { b.Price = decimal.RequireFromString("6.505") }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "6.51", actual.Price().StringFixed(2))
	})
}

func TestFuelDebit(t *testing.T) {
	newFuel := func(volume string) *fuel.Fuel {
		f, err := builder.NewFuelBuilder().
			With(func(b *builder.FuelBuilder) { b.Volume = decimal.RequireFromString(volume) }).
			BuildDomain()
		require.NoError(t, err)
		return f
	}

	t.Run("debit reduces stock", func(t *testing.T) {
		f := newFuel("100.00")
		require.NoError(t, f.Debit(decimal.RequireFromString("30.00")))
		assert.Equal(t, "70", f.Volume().String())
	})

	t.Run("debit to exactly zero succeeds", func(t *testing.T) {
		f := newFuel("50.00")
		require.NoError(t, f.Debit(decimal.RequireFromString("50.00")))
		assert.True(t, f.Volume().IsZero())
	})

	t.Run("overdraw fails and leaves stock unchanged", func(t *testing.T) {
		f := newFuel("50.00")
		err := f.Debit(decimal.RequireFromString("50.01"))
		require.ErrorIs(t, err, fuel.ErrInsufficientStock)
		assert.Equal(t, "50", f.Volume().String())
	})

	t.Run("zero volume is rejected", func(t *testing.T) {
		f := newFuel("50.00")
		require.ErrorIs(t, f.Debit(decimal.Zero), fuel.ErrInvalidVolume)
	})

	t.Run("negative volume is rejected", func(t *testing.T) {
		f := newFuel("50.00")
		require.ErrorIs(t, f.Debit(decimal.RequireFromString("-1")), fuel.ErrInvalidVolume)
	})

	t.Run("unavailable fuel cannot be debited", func(t *testing.T) {
		f, err := builder.NewFuelBuilder().
			With(func(b *builder.FuelBuilder) { b.IsAvailable = false }).
			BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, f.Debit(decimal.RequireFromString("1")), fuel.ErrFuelUnavailable)
	})
}

func TestFuelCredit(t *testing.T) {
	t.Run("credit adds stock", func(t *testing.T) {
		f, err := builder.NewFuelBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, f.Credit(decimal.RequireFromString("250.50")))
		assert.Equal(t, "1250.5", f.Volume().String())
	})

	t.Run("non-positive credit is rejected", func(t *testing.T) {
		f, err := builder.NewFuelBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, f.Credit(decimal.Zero), fuel.ErrInvalidVolume)
		require.ErrorIs(t, f.Credit(decimal.RequireFromString("-5")), fuel.ErrInvalidVolume)
	})
}

func TestFuelCanDispense(t *testing.T) {
	f, err := builder.NewFuelBuilder().
		With(func(b *builder.FuelBuilder) { b.Volume = decimal.RequireFromString("40.00") }).
		BuildDomain()
	require.NoError(t, err)

	assert.True(t, f.CanDispense(decimal.RequireFromString("40.00")))
	assert.True(t, f.CanDispense(decimal.RequireFromString("0.01")))
	assert.False(t, f.CanDispense(decimal.RequireFromString("40.01")))
	assert.False(t, f.CanDispense(decimal.Zero))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewFuelBuilder().With(c.mutate).BuildDomain()

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
