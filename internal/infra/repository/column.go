package repository

import (
	"context"
	"errors"

	"fuelstation/internal/domain/column"
	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type ColumnRepository struct {
	db db.DBTX
}

func NewColumnRepository(dbtx db.DBTX) *ColumnRepository {
	return &ColumnRepository{db: dbtx}
}

// LockByID locks the column row. Every reservation write for a column goes
// through this lock, which makes conflict-check-then-insert atomic per
// column without blocking unrelated columns.
func (r *ColumnRepository) LockByID(ctx context.Context, id int64) (*column.Column, error) {
	const lockQuery = `
		SELECT id, number, is_available
		FROM fuel_columns
		WHERE id = $1
		FOR UPDATE`

	var (
		columnID    int64
		number      int
		isAvailable bool
	)
	err := r.db.QueryRow(ctx, lockQuery, id).Scan(&columnID, &number, &isAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("column not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock column", err)
	}

	fuelIDs, err := r.offeredFuelIDs(ctx, columnID)
	if err != nil {
		return nil, err
	}

	entity, err := column.NewColumn(columnID, number, isAvailable, fuelIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("stored column is invalid", err)
	}
	return entity, nil
}

func (r *ColumnRepository) offeredFuelIDs(ctx context.Context, columnID int64) ([]int64, error) {
	const query = `SELECT fuel_id FROM column_fuels WHERE column_id = $1 ORDER BY fuel_id`

	rows, err := r.db.Query(ctx, query, columnID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read column fuel links", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var fuelID int64
		if err := rows.Scan(&fuelID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan column fuel link", err)
		}
		ids = append(ids, fuelID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate column fuel links", err)
	}
	return ids, nil
}
