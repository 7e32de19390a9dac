package readstore

import (
	"context"
	"errors"

	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
	"fuelstation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(dbtx db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: dbtx}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id int64) (*queries.TransactionView, error) {
	const query = `
		SELECT t.id, t.user_id, t.fuel_id, f.name, t.column_id, c.number,
		       t.volume, t.unit_price, t.total_price, t.payment_method, t.date
		FROM transactions t
		JOIN fuels f ON f.id = t.fuel_id
		JOIN fuel_columns c ON c.id = t.column_id
		WHERE t.id = $1`

	view, err := scanTransactionView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by ID", err)
	}
	return view, nil
}

func (r *TransactionReadStore) FindByUser(ctx context.Context, userID int64) ([]*queries.TransactionView, error) {
	const query = `
		SELECT t.id, t.user_id, t.fuel_id, f.name, t.column_id, c.number,
		       t.volume, t.unit_price, t.total_price, t.payment_method, t.date
		FROM transactions t
		JOIN fuels f ON f.id = t.fuel_id
		JOIN fuel_columns c ON c.id = t.column_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	var result []*queries.TransactionView
	for rows.Next() {
		view, scanErr := scanTransactionView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction view", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction views", err)
	}
	return result, nil
}

func scanTransactionView(row pgx.Row) (*queries.TransactionView, error) {
	var view queries.TransactionView
	err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.FuelID,
		&view.FuelName,
		&view.ColumnID,
		&view.ColumnNumber,
		&view.Volume,
		&view.UnitPrice,
		&view.Total,
		&view.PaymentMethod,
		&view.Date,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
