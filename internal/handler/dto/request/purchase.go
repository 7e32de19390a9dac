package request

import (
	"fuelstation/internal/domain/transaction"
	"fuelstation/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreatePurchaseRequest struct {
	ColumnID      int64           `json:"column_id" binding:"required"`
	FuelID        int64           `json:"fuel_id" binding:"required"`
	Volume        decimal.Decimal `json:"volume" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
}

func (r CreatePurchaseRequest) ToParams(userID int64) commands.PurchaseParams {
	return commands.PurchaseParams{
		UserID:        userID,
		ColumnID:      r.ColumnID,
		FuelID:        r.FuelID,
		Volume:        r.Volume,
		PaymentMethod: transaction.PaymentMethod(r.PaymentMethod),
	}
}
