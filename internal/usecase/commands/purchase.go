package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"fuelstation/internal/domain/fuel"
	"fuelstation/internal/domain/transaction"
	"fuelstation/internal/infra"
	"fuelstation/internal/pkg/clock"
	"fuelstation/internal/pkg/config"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/queries"
	"fuelstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const purchaseEndpoint = "POST /purchases"

type PurchaseParams struct {
	UserID        int64
	ColumnID      int64
	FuelID        int64
	Volume        decimal.Decimal
	PaymentMethod transaction.PaymentMethod
}

type PurchaseResult struct {
	Transaction *queries.TransactionView
	IsReplayed  bool
}

type PurchaseCommands interface {
	// Purchase dispenses fuel as one atomic unit: catalog check, stock
	// check, debit, and the sale record all commit together or not at all.
	Purchase(ctx context.Context, params PurchaseParams, idempotencyKey uuid.UUID) (*PurchaseResult, error)
	// PurgeExpiredKeys removes idempotency keys whose TTL has passed and
	// returns the number removed.
	PurgeExpiredKeys(ctx context.Context) (int64, error)
}

type purchaseCommandsImpl struct {
	uow                shared.UnitOfWork
	transactionQueries queries.TransactionQueries
	clock              clock.Clock
	cfg                config.StationConfig
}

func NewPurchaseCommands(
	uow shared.UnitOfWork,
	transactionQueries queries.TransactionQueries,
	clk clock.Clock,
	cfg config.StationConfig,
) PurchaseCommands {
	return &purchaseCommandsImpl{
		uow:                uow,
		transactionQueries: transactionQueries,
		clock:              clk,
		cfg:                cfg,
	}
}

func (p *purchaseCommandsImpl) Purchase(
	ctx context.Context,
	params PurchaseParams,
	idempotencyKey uuid.UUID,
) (*PurchaseResult, error) {
	if !params.Volume.IsPositive() {
		return nil, errs.ErrInvalidVolume
	}
	if !params.PaymentMethod.IsValid() {
		return nil, errs.ErrInvalidPaymentMethod
	}

	replayed, err := p.claimIdempotencyKey(ctx, params, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &PurchaseResult{Transaction: replayed, IsReplayed: true}, nil
	}

	transactionID, err := p.executePurchase(ctx, params, idempotencyKey)
	if err != nil {
		// Release the claim so an honest retry with the same key is not
		// stuck behind a failed attempt. If the delete itself fails the
		// expired-key purge removes the claim after its TTL.
		_ = p.uow.Idempotency().Delete(ctx, idempotencyKey, params.UserID)
		return nil, err
	}

	view, err := p.transactionQueries.GetByID(ctx, transactionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return &PurchaseResult{Transaction: view, IsReplayed: false}, nil
}

func (p *purchaseCommandsImpl) PurgeExpiredKeys(ctx context.Context) (int64, error) {
	count, err := p.uow.Idempotency().DeleteExpired(ctx, p.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return count, nil
}

// claimIdempotencyKey returns the stored view when the key was already
// completed, nil when this call owns the key and should proceed.
func (p *purchaseCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	params PurchaseParams,
	key uuid.UUID,
) (*queries.TransactionView, error) {
	requestHash := calculateRequestHash(params)
	expiresAt := p.clock.Now().Add(p.cfg.IdempotencyTTL)

	inserted, err := p.uow.Idempotency().TryInsert(ctx, key, params.UserID, purchaseEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	if inserted {
		return nil, nil
	}

	existing, err := p.uow.Idempotency().Get(ctx, key, params.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	// A claim past its TTL is abandoned (e.g. the owner crashed before
	// completing): drop it and claim again.
	if !existing.ExpiresAt.After(p.clock.Now()) {
		if delErr := p.uow.Idempotency().Delete(ctx, key, params.UserID); delErr != nil {
			return nil, errs.Mark(delErr, errs.ErrPersistenceFailure)
		}
		reclaimed, reclaimErr := p.uow.Idempotency().TryInsert(ctx, key, params.UserID, purchaseEndpoint, requestHash, expiresAt)
		if reclaimErr != nil {
			return nil, errs.Mark(reclaimErr, errs.ErrPersistenceFailure)
		}
		if reclaimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrDuplicatePurchase
	}

	switch existing.Status {
	case "completed":
		if existing.ResultTransactionID == nil {
			return nil, errs.New("completed purchase missing result transaction id")
		}
		view, viewErr := p.transactionQueries.GetByID(ctx, *existing.ResultTransactionID)
		if viewErr != nil {
			return nil, errs.Mark(viewErr, errs.ErrPersistenceFailure)
		}
		return view, nil
	case "processing":
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (p *purchaseCommandsImpl) executePurchase(
	ctx context.Context,
	params PurchaseParams,
	idempotencyKey uuid.UUID,
) (int64, error) {
	var transactionID int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		col, colErr := tx.Reads().ColumnByID(ctx, params.ColumnID)
		if colErr != nil {
			if infra.IsKind(colErr, infra.KindNotFound) {
				return errs.ErrColumnNotFound
			}
			return errs.Mark(colErr, errs.ErrPersistenceFailure)
		}
		if !offersFuel(col, params.FuelID) {
			return errs.ErrFuelNotOfferedAtColumn
		}

		// Row lock on the fuel closes the race window between the stock
		// check and the debit: concurrent purchases of the same fuel
		// serialize here and each one sees the latest committed stock.
		fuelEntity, fuelErr := tx.Fuels().LockByID(ctx, params.FuelID)
		if fuelErr != nil {
			if infra.IsKind(fuelErr, infra.KindNotFound) {
				return errs.ErrFuelNotFound
			}
			return errs.Mark(fuelErr, errs.ErrPersistenceFailure)
		}

		if !fuelEntity.CanDispense(params.Volume) {
			return errs.ErrInsufficientStock
		}
		if debitErr := fuelEntity.Debit(params.Volume); debitErr != nil {
			if errors.Is(debitErr, fuel.ErrInsufficientStock) || errors.Is(debitErr, fuel.ErrFuelUnavailable) {
				return errs.ErrInsufficientStock
			}
			return errs.Mark(debitErr, errs.ErrInvalidVolume)
		}
		if updateErr := tx.Fuels().UpdateVolume(ctx, params.FuelID, fuelEntity.Volume()); updateErr != nil {
			return errs.Mark(updateErr, errs.ErrPersistenceFailure)
		}

		// Unit price is snapshotted here; later price edits never touch
		// this sale.
		txn, newErr := transaction.NewTransaction(
			params.UserID,
			params.FuelID,
			params.ColumnID,
			params.Volume,
			fuelEntity.Price(),
			params.PaymentMethod,
			p.clock.Now(),
		)
		if newErr != nil {
			return errs.Mark(newErr, errs.ErrInvalidVolume)
		}

		id, createErr := tx.Transactions().Create(ctx, txn)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrPersistenceFailure)
		}
		transactionID = id

		if jobErr := p.enqueueReceiptJob(ctx, tx, id, params.UserID); jobErr != nil {
			return jobErr
		}

		if markErr := tx.Idempotency().MarkCompleted(ctx, idempotencyKey, params.UserID, id); markErr != nil {
			return errs.Mark(markErr, errs.ErrPersistenceFailure)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return transactionID, nil
}

func (p *purchaseCommandsImpl) enqueueReceiptJob(ctx context.Context, tx shared.Tx, transactionID, userID int64) error {
	payload, err := json.Marshal(map[string]any{
		"transaction_id": transactionID,
		"user_id":        userID,
		"type":           "purchase_receipt",
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal receipt payload")
	}

	if err := tx.Notifications().CreateJob(ctx, "email", "purchase_receipt", payload, p.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}

func offersFuel(col *shared.ColumnSnapshot, fuelID int64) bool {
	for _, id := range col.OfferedFuelIDs {
		if id == fuelID {
			return true
		}
	}
	return false
}

func calculateRequestHash(params PurchaseParams) string {
	data, _ := json.Marshal(map[string]any{
		"user_id":        params.UserID,
		"column_id":      params.ColumnID,
		"fuel_id":        params.FuelID,
		"volume":         params.Volume.String(),
		"payment_method": params.PaymentMethod.String(),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
