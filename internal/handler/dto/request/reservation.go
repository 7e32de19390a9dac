package request

import (
	"time"
)

type CreateReservationRequest struct {
	ColumnID  int64     `json:"column_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}
