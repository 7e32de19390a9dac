package commands

import (
	"context"
	"encoding/json"
	"time"

	"fuelstation/internal/domain/reservation"
	"fuelstation/internal/infra"
	"fuelstation/internal/pkg/clock"
	"fuelstation/internal/pkg/config"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/queries"
	"fuelstation/internal/usecase/shared"
)

type ReservationCommands interface {
	// Reserve books a 15-minute hold on a column. Conflict and daily-limit
	// checks run against the latest committed state inside one transaction,
	// so exactly one of two racing requests for the same slot wins.
	Reserve(ctx context.Context, userID, columnID int64, startTime time.Time) (*queries.ReservationView, error)
	// Cancel is an idempotent flip to inactive; cancelling an already
	// inactive reservation succeeds as a no-op.
	Cancel(ctx context.Context, reservationID int64) error
	// ExpireStale sweeps every active reservation whose slot has passed and
	// returns the number freed.
	ExpireStale(ctx context.Context) (int64, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	cfg                config.StationConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	cfg config.StationConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		cfg:                cfg,
	}
}

func (r *reservationCommandsImpl) Reserve(
	ctx context.Context,
	userID, columnID int64,
	startTime time.Time,
) (*queries.ReservationView, error) {
	slot, err := reservation.NewTimeSlot(startTime, r.cfg.SlotDuration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	var reservationID int64
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The column row lock serializes the conflict check and the insert;
		// a concurrent Reserve on the same column waits here and re-reads
		// committed state.
		col, lockErr := tx.Columns().LockByID(ctx, columnID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return errs.ErrColumnNotFound
			}
			return errs.Mark(lockErr, errs.ErrPersistenceFailure)
		}
		if !col.IsAvailable() {
			return errs.ErrColumnUnavailable
		}

		// Lazy sweep: expired holds must not block the column.
		if _, sweepErr := tx.Reservations().ExpireByColumnBefore(ctx, columnID, r.clock.Now()); sweepErr != nil {
			return errs.Mark(sweepErr, errs.ErrPersistenceFailure)
		}

		active, listErr := tx.Reservations().ActiveByColumn(ctx, columnID)
		if listErr != nil {
			return errs.Mark(listErr, errs.ErrPersistenceFailure)
		}
		for _, existing := range active {
			if existing.Slot().Overlaps(slot) {
				return errs.ErrSlotConflict
			}
		}

		count, countErr := tx.Reservations().CountActiveByUserOnDay(ctx, userID, startTime)
		if countErr != nil {
			return errs.Mark(countErr, errs.ErrPersistenceFailure)
		}
		if count >= r.cfg.DailyLimit {
			return errs.ErrDailyLimitExceeded
		}

		entity := reservation.NewReservation(userID, columnID, slot, r.clock.Now())
		id, createErr := tx.Reservations().Create(ctx, entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				return errs.ErrSlotConflict
			}
			return errs.Mark(createErr, errs.ErrPersistenceFailure)
		}
		reservationID = id

		return r.enqueueReservationJob(ctx, tx, "reservation_created", id, userID)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the committed view
	view, err := r.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return view, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID int64) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrPersistenceFailure)
		}

		if !entity.Cancel() {
			// Already inactive: nothing to write
			return nil
		}

		if err := tx.Reservations().UpdateStatus(ctx, reservationID, entity.Status()); err != nil {
			return errs.Mark(err, errs.ErrPersistenceFailure)
		}

		return r.enqueueReservationJob(ctx, tx, "reservation_cancelled", reservationID, entity.UserID())
	})
}

func (r *reservationCommandsImpl) ExpireStale(ctx context.Context) (int64, error) {
	var count int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		swept, sweepErr := tx.Reservations().ExpireBefore(ctx, r.clock.Now())
		if sweepErr != nil {
			return errs.Mark(sweepErr, errs.ErrPersistenceFailure)
		}
		count = swept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reservationCommandsImpl) enqueueReservationJob(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	reservationID, userID int64,
) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"user_id":        userID,
		"type":           topic,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}

	if err := tx.Notifications().CreateJob(ctx, "email", topic, payload, r.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}
