//go:build unit

package builder

import (
	"time"

	domtxn "fuelstation/internal/domain/transaction"
	"fuelstation/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TransactionBuilder struct {
	ID            int64
	UserID        int64
	FuelID        int64
	ColumnID      int64
	Volume        decimal.Decimal
	UnitPrice     decimal.Decimal
	PaymentMethod domtxn.PaymentMethod
	Date          time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:            1,
		UserID:        10,
		FuelID:        1,
		ColumnID:      1,
		Volume:        decimal.RequireFromString("70.00"),
		UnitPrice:     decimal.RequireFromString("6.50"),
		PaymentMethod: domtxn.PaymentCard,
		Date:          time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) BuildDomain() (*domtxn.Transaction, error) {
	return domtxn.NewTransaction(b.UserID, b.FuelID, b.ColumnID, b.Volume, b.UnitPrice, b.PaymentMethod, b.Date)
}

func (b *TransactionBuilder) BuildView() *queries.TransactionView {
	var view queries.TransactionView
	_ = copier.Copy(&view, b)
	view.Total = domtxn.ComputeTotal(b.Volume, b.UnitPrice)
	view.PaymentMethod = b.PaymentMethod.String()
	return &view
}
