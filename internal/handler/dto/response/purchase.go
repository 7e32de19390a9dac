package response

import (
	"time"

	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/usecase/queries"
)

type TransactionResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	FuelID        int64     `json:"fuelId"`
	FuelName      string    `json:"fuelName"`
	ColumnID      int64     `json:"columnId"`
	ColumnNumber  int       `json:"columnNumber"`
	Volume        string    `json:"volume"`
	UnitPrice     string    `json:"unitPrice"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          time.Time `json:"date"`
}

type PurchaseResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	Replayed    bool                 `json:"replayed"`
}

func FromTransactionView(tm *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		ID:            tm.ID,
		UserID:        tm.UserID,
		FuelID:        tm.FuelID,
		FuelName:      tm.FuelName,
		ColumnID:      tm.ColumnID,
		ColumnNumber:  tm.ColumnNumber,
		Volume:        tm.Volume.String(),
		UnitPrice:     tm.UnitPrice.StringFixed(2),
		Total:         tm.Total.StringFixed(2),
		PaymentMethod: tm.PaymentMethod,
		Date:          tm.Date,
	}
}

func FromTransactionViews(tms []*queries.TransactionView) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(tms))
	for _, tm := range tms {
		out = append(out, FromTransactionView(tm))
	}
	return out
}

func FromPurchaseResult(result *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		Transaction: FromTransactionView(result.Transaction),
		Replayed:    result.IsReplayed,
	}
}
