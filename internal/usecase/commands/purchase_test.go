//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fuelstation/internal/domain/transaction"
	"fuelstation/internal/pkg/clock"
	"fuelstation/internal/pkg/config"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/usecase/queries"
	"fuelstation/tests/common/fake"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseEnv struct {
	store *fake.Store
	uow   *fake.UnitOfWork
	clock *clock.MockClock
	cmd   commands.PurchaseCommands
}

func newPurchaseEnv(t *testing.T) *purchaseEnv {
	t.Helper()

	store := fake.NewStore()
	store.SeedFuel(1, "Diesel", decimal.RequireFromString("6.50"), decimal.RequireFromString("1000.00"), true)
	store.SeedFuel(2, "Petrol 95", decimal.RequireFromString("7.20"), decimal.RequireFromString("500.00"), true)
	store.SeedColumn(1, 1, true, 1, 2)
	store.SeedColumn(2, 2, true, 2)

	clk := clock.NewMockClock(baseTime)
	uow := fake.NewUnitOfWork(store)
	transactionQueries := queries.NewTransactionQueries(fake.NewTransactionViews(store))
	cmd := commands.NewPurchaseCommands(
		uow,
		transactionQueries,
		clk,
		config.NewTestConfig().Station,
	)

	return &purchaseEnv{store: store, uow: uow, clock: clk, cmd: cmd}
}

func dieselParams(userID int64, volume string) commands.PurchaseParams {
	return commands.PurchaseParams{
		UserID:        userID,
		ColumnID:      1,
		FuelID:        1,
		Volume:        decimal.RequireFromString(volume),
		PaymentMethod: transaction.PaymentCard,
	}
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("dispenses fuel and records the sale atomically", func(t *testing.T) {
		env := newPurchaseEnv(t)

		result, err := env.cmd.Purchase(ctx, dieselParams(10, "70.00"), uuid.New())
		require.NoError(t, err)
		require.NotNil(t, result)
		require.False(t, result.IsReplayed)

		txn := result.Transaction
		assert.Equal(t, "455.00", txn.Total.StringFixed(2))
		assert.Equal(t, "6.50", txn.UnitPrice.StringFixed(2))
		assert.Equal(t, "Diesel", txn.FuelName)
		assert.Equal(t, "card", txn.PaymentMethod)
		assert.Equal(t, baseTime, txn.Date)

		assert.Equal(t, "930", env.store.FuelVolume(1).String())
		assert.Contains(t, env.store.JobTopics(), "purchase_receipt")
	})

	t.Run("unknown column", func(t *testing.T) {
		env := newPurchaseEnv(t)

		params := dieselParams(10, "10.00")
		params.ColumnID = 99
		_, err := env.cmd.Purchase(ctx, params, uuid.New())
		require.ErrorIs(t, err, errs.ErrColumnNotFound)
	})

	t.Run("fuel not offered at the column", func(t *testing.T) {
		env := newPurchaseEnv(t)

		params := dieselParams(10, "10.00")
		params.ColumnID = 2 // column 2 only offers petrol
		_, err := env.cmd.Purchase(ctx, params, uuid.New())
		require.ErrorIs(t, err, errs.ErrFuelNotOfferedAtColumn)
		assert.Equal(t, "1000", env.store.FuelVolume(1).String())
	})

	t.Run("non-positive volume", func(t *testing.T) {
		env := newPurchaseEnv(t)

		params := dieselParams(10, "10.00")
		params.Volume = decimal.Zero
		_, err := env.cmd.Purchase(ctx, params, uuid.New())
		require.ErrorIs(t, err, errs.ErrInvalidVolume)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		env := newPurchaseEnv(t)

		params := dieselParams(10, "10.00")
		params.PaymentMethod = "check"
		_, err := env.cmd.Purchase(ctx, params, uuid.New())
		require.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("insufficient stock leaves everything untouched", func(t *testing.T) {
		env := newPurchaseEnv(t)

		_, err := env.cmd.Purchase(ctx, dieselParams(10, "1000.01"), uuid.New())
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		assert.Equal(t, "1000", env.store.FuelVolume(1).String())
		assert.Zero(t, env.store.TransactionCount())
	})

	t.Run("purchase of the entire remaining stock succeeds", func(t *testing.T) {
		env := newPurchaseEnv(t)

		result, err := env.cmd.Purchase(ctx, dieselParams(10, "1000.00"), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "6500.00", result.Transaction.Total.StringFixed(2))
		assert.True(t, env.store.FuelVolume(1).IsZero())
	})

	t.Run("price snapshot survives later price changes", func(t *testing.T) {
		env := newPurchaseEnv(t)

		result, err := env.cmd.Purchase(ctx, dieselParams(10, "10.00"), uuid.New())
		require.NoError(t, err)

		// Reprice the fuel after the sale
		env.store.SeedFuel(1, "Diesel", decimal.RequireFromString("9.99"), env.store.FuelVolume(1), true)

		assert.Equal(t, "6.50", result.Transaction.UnitPrice.StringFixed(2))
		assert.Equal(t, "65.00", result.Transaction.Total.StringFixed(2))
	})
}

func TestPurchaseIdempotency(t *testing.T) {
	ctx := context.Background()

	t.Run("same key with same params replays the stored result", func(t *testing.T) {
		env := newPurchaseEnv(t)
		key := uuid.New()
		params := dieselParams(10, "70.00")

		first, err := env.cmd.Purchase(ctx, params, key)
		require.NoError(t, err)
		require.False(t, first.IsReplayed)

		second, err := env.cmd.Purchase(ctx, params, key)
		require.NoError(t, err)
		require.True(t, second.IsReplayed)
		assert.Equal(t, first.Transaction.ID, second.Transaction.ID)

		// Dispensed exactly once
		assert.Equal(t, "930", env.store.FuelVolume(1).String())
		assert.Equal(t, 1, env.store.TransactionCount())
	})

	t.Run("same key with different params is rejected", func(t *testing.T) {
		env := newPurchaseEnv(t)
		key := uuid.New()

		_, err := env.cmd.Purchase(ctx, dieselParams(10, "70.00"), key)
		require.NoError(t, err)

		_, err = env.cmd.Purchase(ctx, dieselParams(10, "80.00"), key)
		require.ErrorIs(t, err, errs.ErrDuplicatePurchase)
	})

	t.Run("same key is scoped per user", func(t *testing.T) {
		env := newPurchaseEnv(t)
		key := uuid.New()

		_, err := env.cmd.Purchase(ctx, dieselParams(10, "10.00"), key)
		require.NoError(t, err)

		_, err = env.cmd.Purchase(ctx, dieselParams(11, "10.00"), key)
		require.NoError(t, err)
		assert.Equal(t, 2, env.store.TransactionCount())
	})

	t.Run("failed attempt releases the key for an honest retry", func(t *testing.T) {
		env := newPurchaseEnv(t)
		key := uuid.New()
		params := dieselParams(10, "2000.00")

		_, err := env.cmd.Purchase(ctx, params, key)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		// Stock arrives; the same key with the same params must dispense.
		env.store.SeedFuel(1, "Diesel", decimal.RequireFromString("6.50"), decimal.RequireFromString("5000.00"), true)

		result, err := env.cmd.Purchase(ctx, params, key)
		require.NoError(t, err)
		require.False(t, result.IsReplayed)
		assert.Equal(t, "3000", env.store.FuelVolume(1).String())
		assert.Equal(t, 1, env.store.TransactionCount())
	})

	t.Run("claim abandoned past its TTL is reclaimed", func(t *testing.T) {
		env := newPurchaseEnv(t)
		key := uuid.New()

		// A processing claim left behind by a crashed owner.
		inserted, err := env.uow.Idempotency().TryInsert(ctx, key, 10, "POST /purchases", "orphaned", baseTime.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, inserted)

		env.clock.Set(baseTime.Add(24 * time.Hour))

		result, err := env.cmd.Purchase(ctx, dieselParams(10, "10.00"), key)
		require.NoError(t, err)
		require.False(t, result.IsReplayed)
		assert.Equal(t, 1, env.store.TransactionCount())
	})

	t.Run("claim within its TTL is not reclaimed", func(t *testing.T) {
		env := newPurchaseEnv(t)
		key := uuid.New()

		inserted, err := env.uow.Idempotency().TryInsert(ctx, key, 10, "POST /purchases", "in-flight", baseTime.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, inserted)

		env.clock.Set(baseTime.Add(23 * time.Hour))

		_, err = env.cmd.Purchase(ctx, dieselParams(10, "10.00"), key)
		require.ErrorIs(t, err, errs.ErrDuplicatePurchase)
		assert.Zero(t, env.store.TransactionCount())
	})
}

func TestPurgeExpiredKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only keys past their TTL", func(t *testing.T) {
		env := newPurchaseEnv(t)
		stale := uuid.New()
		live := uuid.New()

		_, err := env.uow.Idempotency().TryInsert(ctx, stale, 10, "POST /purchases", "a", baseTime.Add(time.Hour))
		require.NoError(t, err)
		_, err = env.uow.Idempotency().TryInsert(ctx, live, 10, "POST /purchases", "b", baseTime.Add(48*time.Hour))
		require.NoError(t, err)

		env.clock.Set(baseTime.Add(24 * time.Hour))

		purged, err := env.cmd.PurgeExpiredKeys(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)

		_, err = env.uow.Idempotency().Get(ctx, stale, 10)
		require.Error(t, err)
		_, err = env.uow.Idempotency().Get(ctx, live, 10)
		require.NoError(t, err)
	})

	t.Run("nothing to purge", func(t *testing.T) {
		env := newPurchaseEnv(t)

		purged, err := env.cmd.PurgeExpiredKeys(ctx)
		require.NoError(t, err)
		assert.Zero(t, purged)
	})
}

func TestPurchaseConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent purchases drain stock to exactly zero", func(t *testing.T) {
		env := newPurchaseEnv(t)
		env.store.SeedFuel(1, "Diesel", decimal.RequireFromString("6.50"), decimal.RequireFromString("100.00"), true)

		const workers = 10
		var wg sync.WaitGroup
		errCh := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				_, err := env.cmd.Purchase(ctx, dieselParams(userID, "10.00"), uuid.New())
				errCh <- err
			}(int64(100 + i))
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			require.NoError(t, err)
		}
		assert.True(t, env.store.FuelVolume(1).IsZero())
		assert.Equal(t, workers, env.store.TransactionCount())
	})

	t.Run("over-demand dispenses only while stock lasts", func(t *testing.T) {
		env := newPurchaseEnv(t)
		env.store.SeedFuel(1, "Diesel", decimal.RequireFromString("100.00"), decimal.RequireFromString("100.00"), true)

		const workers = 15
		var wg sync.WaitGroup
		errCh := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				_, err := env.cmd.Purchase(ctx, dieselParams(userID, "10.00"), uuid.New())
				errCh <- err
			}(int64(100 + i))
		}
		wg.Wait()
		close(errCh)

		succeeded, rejected := 0, 0
		for err := range errCh {
			switch {
			case err == nil:
				succeeded++
			default:
				require.ErrorIs(t, err, errs.ErrInsufficientStock)
				rejected++
			}
		}
		assert.Equal(t, 10, succeeded)
		assert.Equal(t, 5, rejected)
		assert.True(t, env.store.FuelVolume(1).IsZero())
	})
}
