package response

import (
	"fuelstation/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type FuelResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Volume      string `json:"volume"`
	IsAvailable bool   `json:"isAvailable"`
}

type ColumnResponse struct {
	ID          int64           `json:"id"`
	Number      int             `json:"number"`
	IsAvailable bool            `json:"isAvailable"`
	Fuels       []*FuelResponse `json:"fuels"`
}

type RestockResponse struct {
	FuelID int64  `json:"fuelId"`
	Volume string `json:"volume"`
}

func FromFuelView(fm *queries.FuelView) *FuelResponse {
	return &FuelResponse{
		ID:          fm.ID,
		Name:        fm.Name,
		Price:       fm.Price.StringFixed(2),
		Volume:      fm.Volume.String(),
		IsAvailable: fm.IsAvailable,
	}
}

func FromFuelViews(fms []*queries.FuelView) []*FuelResponse {
	out := make([]*FuelResponse, 0, len(fms))
	for _, fm := range fms {
		out = append(out, FromFuelView(fm))
	}
	return out
}

func FromColumnView(cm *queries.ColumnView) *ColumnResponse {
	fuels := make([]*FuelResponse, 0, len(cm.Fuels))
	for i := range cm.Fuels {
		fuels = append(fuels, FromFuelView(&cm.Fuels[i]))
	}
	return &ColumnResponse{
		ID:          cm.ID,
		Number:      cm.Number,
		IsAvailable: cm.IsAvailable,
		Fuels:       fuels,
	}
}

func FromColumnViews(cms []*queries.ColumnView) []*ColumnResponse {
	out := make([]*ColumnResponse, 0, len(cms))
	for _, cm := range cms {
		out = append(out, FromColumnView(cm))
	}
	return out
}

func NewRestockResponse(fuelID int64, volume decimal.Decimal) *RestockResponse {
	return &RestockResponse{
		FuelID: fuelID,
		Volume: volume.String(),
	}
}
