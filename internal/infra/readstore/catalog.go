package readstore

import (
	"context"

	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
	"fuelstation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) FindColumns(ctx context.Context) ([]*queries.ColumnView, error) {
	const query = `SELECT id, number, is_available FROM fuel_columns ORDER BY number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list columns", err)
	}
	defer rows.Close()

	var columns []*queries.ColumnView
	for rows.Next() {
		var view queries.ColumnView
		if err := rows.Scan(&view.ID, &view.Number, &view.IsAvailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan column view", err)
		}
		columns = append(columns, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate column views", err)
	}

	for _, col := range columns {
		fuels, fuelErr := r.FindFuelsByColumn(ctx, col.ID)
		if fuelErr != nil {
			return nil, fuelErr
		}
		col.Fuels = make([]queries.FuelView, len(fuels))
		for i, f := range fuels {
			col.Fuels[i] = *f
		}
	}
	return columns, nil
}

func (r *CatalogReadStore) FindFuels(ctx context.Context) ([]*queries.FuelView, error) {
	const query = `SELECT id, name, price, volume, is_available FROM fuels ORDER BY name`
	return r.queryFuels(ctx, query)
}

func (r *CatalogReadStore) FindFuelsByColumn(ctx context.Context, columnID int64) ([]*queries.FuelView, error) {
	const query = `
		SELECT f.id, f.name, f.price, f.volume, f.is_available
		FROM fuels f
		JOIN column_fuels cf ON cf.fuel_id = f.id
		WHERE cf.column_id = $1
		ORDER BY f.name`

	return r.queryFuels(ctx, query, columnID)
}

func (r *CatalogReadStore) LinkExists(ctx context.Context, columnID, fuelID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM column_fuels WHERE column_id = $1 AND fuel_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, columnID, fuelID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check column fuel link", err)
	}
	return exists, nil
}

func (r *CatalogReadStore) queryFuels(ctx context.Context, query string, args ...any) ([]*queries.FuelView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fuels", err)
	}
	defer rows.Close()

	var result []*queries.FuelView
	for rows.Next() {
		view, scanErr := scanFuelView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan fuel view", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate fuel views", err)
	}
	return result, nil
}

func scanFuelView(row pgx.Row) (*queries.FuelView, error) {
	var view queries.FuelView
	err := row.Scan(&view.ID, &view.Name, &view.Price, &view.Volume, &view.IsAvailable)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
