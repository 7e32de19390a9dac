package request

import (
	"github.com/shopspring/decimal"
)

type RestockRequest struct {
	Volume decimal.Decimal `json:"volume" binding:"required"`
}
