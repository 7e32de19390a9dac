package repository

import (
	"context"
	"errors"

	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
	"fuelstation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// CommandReads serves the write side's snapshot lookups. Reads always hit
// the latest committed row; nothing is cached between operations.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ColumnByID(ctx context.Context, id int64) (*shared.ColumnSnapshot, error) {
	const query = `
		SELECT id, number, is_available
		FROM fuel_columns
		WHERE id = $1`

	var snap shared.ColumnSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Number, &snap.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("column not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read column", err)
	}

	const linkQuery = `SELECT fuel_id FROM column_fuels WHERE column_id = $1 ORDER BY fuel_id`
	rows, err := r.db.Query(ctx, linkQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read column fuel links", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fuelID int64
		if err := rows.Scan(&fuelID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan column fuel link", err)
		}
		snap.OfferedFuelIDs = append(snap.OfferedFuelIDs, fuelID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate column fuel links", err)
	}
	return &snap, nil
}
