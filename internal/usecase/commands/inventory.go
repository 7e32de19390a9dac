package commands

import (
	"context"

	"fuelstation/internal/infra"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type InventoryCommands interface {
	// Restock is the administrative credit path. It does not deduplicate;
	// a retried restock adds again.
	Restock(ctx context.Context, fuelID int64, volume decimal.Decimal) (decimal.Decimal, error)
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

func (i *inventoryCommandsImpl) Restock(ctx context.Context, fuelID int64, volume decimal.Decimal) (decimal.Decimal, error) {
	if !volume.IsPositive() {
		return decimal.Zero, errs.ErrInvalidVolume
	}

	var newLevel decimal.Decimal
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fuelEntity, lockErr := tx.Fuels().LockByID(ctx, fuelID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return errs.ErrFuelNotFound
			}
			return errs.Mark(lockErr, errs.ErrPersistenceFailure)
		}

		if creditErr := fuelEntity.Credit(volume); creditErr != nil {
			return errs.Mark(creditErr, errs.ErrInvalidVolume)
		}

		if updateErr := tx.Fuels().UpdateVolume(ctx, fuelID, fuelEntity.Volume()); updateErr != nil {
			return errs.Mark(updateErr, errs.ErrPersistenceFailure)
		}
		newLevel = fuelEntity.Volume()
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newLevel, nil
}
