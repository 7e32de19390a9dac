package readstore

import (
	"context"
	"errors"
	"time"

	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
	"fuelstation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.user_id, r.column_id, c.number, r.start_time, r.end_time, r.status, r.created_at
		FROM reservations r
		JOIN fuel_columns c ON c.id = r.column_id
		WHERE r.id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindActiveByUser(ctx context.Context, userID int64, fromDate time.Time) ([]*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.user_id, r.column_id, c.number, r.start_time, r.end_time, r.status, r.created_at
		FROM reservations r
		JOIN fuel_columns c ON c.id = r.column_id
		WHERE r.user_id = $1 AND r.status = 'active' AND r.start_time >= $2
		ORDER BY r.start_time`

	return r.queryViews(ctx, query, userID, fromDate)
}

func (r *ReservationReadStore) FindActiveByColumn(ctx context.Context, columnID int64) ([]*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.user_id, r.column_id, c.number, r.start_time, r.end_time, r.status, r.created_at
		FROM reservations r
		JOIN fuel_columns c ON c.id = r.column_id
		WHERE r.column_id = $1 AND r.status = 'active'
		ORDER BY r.start_time`

	return r.queryViews(ctx, query, columnID)
}

func (r *ReservationReadStore) queryViews(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation views", err)
	}
	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.ColumnID,
		&view.ColumnNumber,
		&view.StartTime,
		&view.EndTime,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
