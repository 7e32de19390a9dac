package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidVolume        = errors.New("volume must be positive")
	ErrInvalidUnitPrice     = errors.New("unit price must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Transaction is one completed sale. UnitPrice is a snapshot of the fuel
// price at sale time and Total is computed once; the record is immutable
// and later price changes never touch it.
type Transaction struct {
	id            int64
	userID        int64
	fuelID        int64
	columnID      int64
	volume        decimal.Decimal
	unitPrice     decimal.Decimal
	total         decimal.Decimal
	paymentMethod PaymentMethod
	date          time.Time
}

func NewTransaction(
	userID, fuelID, columnID int64,
	volume, unitPrice decimal.Decimal,
	paymentMethod PaymentMethod,
	date time.Time,
) (*Transaction, error) {
	if !volume.IsPositive() {
		return nil, ErrInvalidVolume
	}
	if !unitPrice.IsPositive() {
		return nil, ErrInvalidUnitPrice
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	return &Transaction{
		userID:        userID,
		fuelID:        fuelID,
		columnID:      columnID,
		volume:        volume.Round(2),
		unitPrice:     unitPrice,
		total:         ComputeTotal(volume, unitPrice),
		paymentMethod: paymentMethod,
		date:          date,
	}, nil
}

func Reconstruct(
	id, userID, fuelID, columnID int64,
	volume, unitPrice, total decimal.Decimal,
	paymentMethod PaymentMethod,
	date time.Time,
) *Transaction {
	return &Transaction{
		id:            id,
		userID:        userID,
		fuelID:        fuelID,
		columnID:      columnID,
		volume:        volume,
		unitPrice:     unitPrice,
		total:         total,
		paymentMethod: paymentMethod,
		date:          date,
	}
}

// ComputeTotal is volume times unit price, fixed-point with two decimal
// places, round half up.
func ComputeTotal(volume, unitPrice decimal.Decimal) decimal.Decimal {
	return volume.Mul(unitPrice).Round(2)
}

func (t *Transaction) ID() int64                    { return t.id }
func (t *Transaction) UserID() int64                { return t.userID }
func (t *Transaction) FuelID() int64                { return t.fuelID }
func (t *Transaction) ColumnID() int64              { return t.columnID }
func (t *Transaction) Volume() decimal.Decimal      { return t.volume }
func (t *Transaction) UnitPrice() decimal.Decimal   { return t.unitPrice }
func (t *Transaction) Total() decimal.Decimal       { return t.total }
func (t *Transaction) PaymentMethod() PaymentMethod { return t.paymentMethod }
func (t *Transaction) Date() time.Time              { return t.date }
