package response

import (
	"time"

	"fuelstation/internal/usecase/queries"
)

type ReservationResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	ColumnID     int64     `json:"columnId"`
	ColumnNumber int       `json:"columnNumber"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		UserID:       rm.UserID,
		ColumnID:     rm.ColumnID,
		ColumnNumber: rm.ColumnNumber,
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromReservationView(rm))
	}
	return out
}
