//go:build unit

package builder

import (
	domfuel "fuelstation/internal/domain/fuel"
	"fuelstation/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type FuelBuilder struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Volume      decimal.Decimal
	IsAvailable bool
}

func NewFuelBuilder() *FuelBuilder {
	return &FuelBuilder{
		ID:          1,
		Name:        "Diesel",
		Price:       decimal.RequireFromString("6.50"),
		Volume:      decimal.RequireFromString("1000.00"),
		IsAvailable: true,
	}
}

func (b *FuelBuilder) With(mutate func(*FuelBuilder)) *FuelBuilder {
	mutate(b)
	return b
}

func (b *FuelBuilder) BuildDomain() (*domfuel.Fuel, error) {
	return domfuel.NewFuel(b.ID, b.Name, b.Price, b.Volume, b.IsAvailable)
}

func (b *FuelBuilder) BuildView() *queries.FuelView {
	var view queries.FuelView
	_ = copier.Copy(&view, b)
	return &view
}
