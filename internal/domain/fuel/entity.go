package fuel

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrNegativeStock     = errors.New("stock cannot be negative")
	ErrInvalidVolume     = errors.New("volume must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrFuelUnavailable   = errors.New("fuel is not available")
	ErrEmptyName         = errors.New("fuel name cannot be empty")
)

// Fuel is one dispensable fuel type. Price and Volume are fixed-point with
// two decimal places; Volume is the remaining stock in liters.
type Fuel struct {
	id          int64
	name        string
	price       decimal.Decimal
	volume      decimal.Decimal
	isAvailable bool
}

func NewFuel(id int64, name string, price, volume decimal.Decimal, isAvailable bool) (*Fuel, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if volume.IsNegative() {
		return nil, ErrNegativeStock
	}

	return &Fuel{
		id:          id,
		name:        name,
		price:       price.Round(2),
		volume:      volume.Round(2),
		isAvailable: isAvailable,
	}, nil
}

// CanDispense reports whether the requested volume could be served from
// the current stock. It does not reserve anything; Debit re-checks.
func (f *Fuel) CanDispense(volume decimal.Decimal) bool {
	if !f.isAvailable {
		return false
	}
	if !volume.IsPositive() {
		return false
	}
	return f.volume.GreaterThanOrEqual(volume)
}

// Debit reduces stock by volume. Stock never goes negative: a debit that
// would overdraw fails with ErrInsufficientStock and leaves stock unchanged.
func (f *Fuel) Debit(volume decimal.Decimal) error {
	if !volume.IsPositive() {
		return ErrInvalidVolume
	}
	if !f.isAvailable {
		return ErrFuelUnavailable
	}
	if volume.GreaterThan(f.volume) {
		return ErrInsufficientStock
	}
	f.volume = f.volume.Sub(volume)
	return nil
}

// Credit is the administrative restock path. The caller is responsible for
// deduplicating retries.
func (f *Fuel) Credit(volume decimal.Decimal) error {
	if !volume.IsPositive() {
		return ErrInvalidVolume
	}
	f.volume = f.volume.Add(volume)
	return nil
}

func (f *Fuel) ID() int64               { return f.id }
func (f *Fuel) Name() string            { return f.name }
func (f *Fuel) Price() decimal.Decimal  { return f.price }
func (f *Fuel) Volume() decimal.Decimal { return f.volume }
func (f *Fuel) IsAvailable() bool       { return f.isAvailable }
