package repository

import (
	"context"

	"fuelstation/internal/domain/transaction"
	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(dbtx db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: dbtx}
}

// Create appends the sale record. Transactions are never updated or
// deleted by this service.
func (r *TransactionRepository) Create(ctx context.Context, txn *transaction.Transaction) (int64, error) {
	const query = `
		INSERT INTO transactions (user_id, fuel_id, column_id, volume, unit_price, total_price, payment_method, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		txn.UserID(),
		txn.FuelID(),
		txn.ColumnID(),
		txn.Volume(),
		txn.UnitPrice(),
		txn.Total(),
		txn.PaymentMethod().String(),
		txn.Date(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create transaction", err)
	}
	return id, nil
}
