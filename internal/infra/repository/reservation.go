package repository

import (
	"context"
	"errors"
	"time"

	"fuelstation/internal/domain/reservation"
	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const query = `
		INSERT INTO reservations (user_id, column_id, start_time, end_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		res.UserID(),
		res.ColumnID(),
		res.Slot().Start(),
		res.Slot().End(),
		res.Status().String(),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	const query = `
		SELECT id, user_id, column_id, start_time, end_time, status, created_at
		FROM reservations
		WHERE id = $1`

	entity, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return entity, nil
}

func (r *ReservationRepository) ActiveByColumn(ctx context.Context, columnID int64) ([]*reservation.Reservation, error) {
	const query = `
		SELECT id, user_id, column_id, start_time, end_time, status, created_at
		FROM reservations
		WHERE column_id = $1 AND status = 'active'
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, columnID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		entity, scanErr := r.scanOne(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", scanErr)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

// CountActiveByUserOnDay counts the active reservations whose slot starts
// on the same calendar day as day.
func (r *ReservationRepository) CountActiveByUserOnDay(ctx context.Context, userID int64, day time.Time) (int, error) {
	const query = `
		SELECT count(*)
		FROM reservations
		WHERE user_id = $1
		  AND status = 'active'
		  AND start_time >= date_trunc('day', $2::timestamptz)
		  AND start_time < date_trunc('day', $2::timestamptz) + interval '1 day'`

	var count int
	if err := r.db.QueryRow(ctx, query, userID, day).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count daily reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ExpireBefore(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE reservations
		SET status = 'expired', updated_at = now()
		WHERE status = 'active' AND end_time <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) ExpireByColumnBefore(ctx context.Context, columnID int64, now time.Time) (int64, error) {
	const query = `
		UPDATE reservations
		SET status = 'expired', updated_at = now()
		WHERE column_id = $1 AND status = 'active' AND end_time <= $2`

	tag, err := r.db.Exec(ctx, query, columnID, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire column reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) scanOne(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id        int64
		userID    int64
		columnID  int64
		startTime time.Time
		endTime   time.Time
		status    string
		createdAt time.Time
	)
	if err := row.Scan(&id, &userID, &columnID, &startTime, &endTime, &status, &createdAt); err != nil {
		return nil, err
	}

	slot := reservation.ReconstructSlot(startTime, endTime)
	return reservation.Reconstruct(id, userID, columnID, slot, reservation.Status(status), createdAt)
}
