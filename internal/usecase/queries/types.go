package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTOs for the read side)
type ReservationView struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ColumnID     int64     `json:"column_id"`
	ColumnNumber int       `json:"column_number"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type FuelView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Volume      decimal.Decimal `json:"volume"`
	IsAvailable bool            `json:"is_available"`
}

type ColumnView struct {
	ID          int64      `json:"id"`
	Number      int        `json:"number"`
	IsAvailable bool       `json:"is_available"`
	Fuels       []FuelView `json:"fuels"`
}

type TransactionView struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	FuelID        int64           `json:"fuel_id"`
	FuelName      string          `json:"fuel_name"`
	ColumnID      int64           `json:"column_id"`
	ColumnNumber  int             `json:"column_number"`
	Volume        decimal.Decimal `json:"volume"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Date          time.Time       `json:"date"`
}
