package queries

import (
	"context"
	"time"

	"fuelstation/internal/infra"
	"fuelstation/internal/pkg/errs"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	// ActiveForUser lists a user's active reservations whose slot starts at
	// or after fromDate.
	ActiveForUser(ctx context.Context, userID int64, fromDate time.Time) ([]*ReservationView, error)
	ActiveForColumn(ctx context.Context, columnID int64) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindActiveByUser(ctx context.Context, userID int64, fromDate time.Time) ([]*ReservationView, error)
	FindActiveByColumn(ctx context.Context, columnID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ActiveForUser(ctx context.Context, userID int64, fromDate time.Time) ([]*ReservationView, error) {
	return q.repo.FindActiveByUser(ctx, userID, fromDate)
}

func (q *reservationQueriesImpl) ActiveForColumn(ctx context.Context, columnID int64) ([]*ReservationView, error) {
	return q.repo.FindActiveByColumn(ctx, columnID)
}
