package repository

import (
	"context"
	"errors"

	"fuelstation/internal/domain/fuel"
	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type FuelRepository struct {
	db db.DBTX
}

func NewFuelRepository(dbtx db.DBTX) *FuelRepository {
	return &FuelRepository{db: dbtx}
}

// LockByID takes a row-level lock on the fuel so the caller's
// check-then-debit sequence is serialized per fuel id.
func (r *FuelRepository) LockByID(ctx context.Context, id int64) (*fuel.Fuel, error) {
	const query = `
		SELECT id, name, price, volume, is_available
		FROM fuels
		WHERE id = $1
		FOR UPDATE`

	var (
		fuelID      int64
		name        string
		price       decimal.Decimal
		volume      decimal.Decimal
		isAvailable bool
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&fuelID, &name, &price, &volume, &isAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("fuel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock fuel", err)
	}

	entity, err := fuel.NewFuel(fuelID, name, price, volume, isAvailable)
	if err != nil {
		return nil, infra.WrapRepoErr("stored fuel is invalid", err)
	}
	return entity, nil
}

func (r *FuelRepository) UpdateVolume(ctx context.Context, id int64, volume decimal.Decimal) error {
	const query = `
		UPDATE fuels
		SET volume = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, volume)
	if err != nil {
		return infra.WrapRepoErr("failed to update fuel volume", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fuel not found", nil, infra.KindNotFound)
	}
	return nil
}
