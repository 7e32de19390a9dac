//go:build unit

package builder

import (
	"time"

	domres "fuelstation/internal/domain/reservation"
	"fuelstation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationBuilder struct {
	ID        int64
	UserID    int64
	ColumnID  int64
	StartTime time.Time
	Duration  time.Duration
	Status    domres.Status
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        1,
		UserID:    10,
		ColumnID:  1,
		StartTime: start,
		Duration:  15 * time.Minute,
		Status:    domres.StatusActive,
		CreatedAt: start.Add(-time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildSlot() (domres.TimeSlot, error) {
	return domres.NewTimeSlot(b.StartTime, b.Duration)
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	return domres.Reconstruct(b.ID, b.UserID, b.ColumnID, slot, b.Status, b.CreatedAt)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	var view queries.ReservationView
	_ = copier.Copy(&view, b)
	view.EndTime = b.StartTime.Add(b.Duration)
	view.Status = b.Status.String()
	return &view
}
