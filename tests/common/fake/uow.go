//go:build unit

package fake

import (
	"context"
	"errors"
	"time"

	"fuelstation/internal/domain/column"
	"fuelstation/internal/domain/fuel"
	"fuelstation/internal/domain/reservation"
	"fuelstation/internal/domain/transaction"
	"fuelstation/internal/infra"
	"fuelstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errNoRows = errors.New("no rows")

// UnitOfWork serializes Within callers under the store lock, which stands
// in for the row-level locks the real implementation takes: two concurrent
// commands never interleave, and the later one sees the earlier one's
// committed state.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *UnitOfWork) Reads() shared.CommandReads {
	return &lockedReads{store: u.store}
}

func (u *UnitOfWork) Idempotency() shared.IdempotencyRepository {
	return &lockedIdempotency{store: u.store}
}

// fakeTx repos run with the store lock already held by Within.
type fakeTx struct {
	store *Store
}

func (t *fakeTx) Fuels() shared.FuelRepository               { return &fuelRepo{store: t.store} }
func (t *fakeTx) Columns() shared.ColumnRepository           { return &columnRepo{store: t.store} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &reservationRepo{store: t.store} }
func (t *fakeTx) Transactions() shared.TransactionRepository { return &transactionRepo{store: t.store} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return &idempotencyRepo{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{store: t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &commandReads{store: t.store} }

type fuelRepo struct {
	store *Store
}

func (r *fuelRepo) LockByID(_ context.Context, id int64) (*fuel.Fuel, error) {
	state, ok := r.store.fuels[id]
	if !ok {
		return nil, infra.WrapRepoErr("fuel not found", errNoRows, infra.KindNotFound)
	}
	return fuel.NewFuel(id, state.Name, state.Price, state.Volume, state.IsAvailable)
}

func (r *fuelRepo) UpdateVolume(_ context.Context, id int64, volume decimal.Decimal) error {
	state, ok := r.store.fuels[id]
	if !ok {
		return infra.WrapRepoErr("fuel not found", errNoRows, infra.KindNotFound)
	}
	state.Volume = volume
	return nil
}

type columnRepo struct {
	store *Store
}

func (r *columnRepo) LockByID(_ context.Context, id int64) (*column.Column, error) {
	state, ok := r.store.columns[id]
	if !ok {
		return nil, infra.WrapRepoErr("column not found", errNoRows, infra.KindNotFound)
	}
	return column.NewColumn(id, state.Number, state.IsAvailable, state.FuelIDs)
}

type reservationRepo struct {
	store *Store
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	r.store.nextReservationID++
	id := r.store.nextReservationID
	r.store.reservations[id] = &reservationState{
		UserID:    res.UserID(),
		ColumnID:  res.ColumnID(),
		StartTime: res.Slot().Start(),
		EndTime:   res.Slot().End(),
		Status:    res.Status().String(),
		CreatedAt: res.CreatedAt(),
	}
	return id, nil
}

func (r *reservationRepo) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	state, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	return reservation.Reconstruct(
		id,
		state.UserID,
		state.ColumnID,
		reservation.ReconstructSlot(state.StartTime, state.EndTime),
		reservation.Status(state.Status),
		state.CreatedAt,
	)
}

func (r *reservationRepo) ActiveByColumn(ctx context.Context, columnID int64) ([]*reservation.Reservation, error) {
	var result []*reservation.Reservation
	for id, state := range r.store.reservations {
		if state.ColumnID != columnID || state.Status != reservation.StatusActive.String() {
			continue
		}
		entity, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *reservationRepo) CountActiveByUserOnDay(_ context.Context, userID int64, day time.Time) (int, error) {
	y, m, d := day.Date()
	count := 0
	for _, state := range r.store.reservations {
		if state.UserID != userID || state.Status != reservation.StatusActive.String() {
			continue
		}
		ry, rm, rd := state.StartTime.Date()
		if ry == y && rm == m && rd == d {
			count++
		}
	}
	return count, nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id int64, status reservation.Status) error {
	state, ok := r.store.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	state.Status = status.String()
	return nil
}

func (r *reservationRepo) ExpireBefore(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, state := range r.store.reservations {
		if state.Status == reservation.StatusActive.String() && !state.EndTime.After(now) {
			state.Status = reservation.StatusExpired.String()
			count++
		}
	}
	return count, nil
}

func (r *reservationRepo) ExpireByColumnBefore(_ context.Context, columnID int64, now time.Time) (int64, error) {
	var count int64
	for _, state := range r.store.reservations {
		if state.ColumnID != columnID {
			continue
		}
		if state.Status == reservation.StatusActive.String() && !state.EndTime.After(now) {
			state.Status = reservation.StatusExpired.String()
			count++
		}
	}
	return count, nil
}

type transactionRepo struct {
	store *Store
}

func (r *transactionRepo) Create(_ context.Context, txn *transaction.Transaction) (int64, error) {
	r.store.nextTransactionID++
	id := r.store.nextTransactionID
	r.store.transactions[id] = &transactionState{
		UserID:        txn.UserID(),
		FuelID:        txn.FuelID(),
		ColumnID:      txn.ColumnID(),
		Volume:        txn.Volume(),
		UnitPrice:     txn.UnitPrice(),
		Total:         txn.Total(),
		PaymentMethod: txn.PaymentMethod().String(),
		Date:          txn.Date(),
	}
	return id, nil
}

type idempotencyRepo struct {
	store *Store
}

func (r *idempotencyRepo) TryInsert(_ context.Context, key uuid.UUID, userID int64, _ string, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{Key: key, UserID: userID}
	if _, exists := r.store.idempotency[k]; exists {
		return false, nil
	}
	r.store.idempotency[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) Get(_ context.Context, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	rec, ok := r.store.idempotency[idemKey{Key: key, UserID: userID}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", errNoRows, infra.KindNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (r *idempotencyRepo) MarkCompleted(_ context.Context, key uuid.UUID, userID int64, resultTransactionID int64) error {
	rec, ok := r.store.idempotency[idemKey{Key: key, UserID: userID}]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", errNoRows, infra.KindNotFound)
	}
	rec.Status = "completed"
	rec.ResultTransactionID = &resultTransactionID
	return nil
}

func (r *idempotencyRepo) Delete(_ context.Context, key uuid.UUID, userID int64) error {
	delete(r.store.idempotency, idemKey{Key: key, UserID: userID})
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for k, rec := range r.store.idempotency {
		if !rec.ExpiresAt.After(now) {
			delete(r.store.idempotency, k)
			count++
		}
	}
	return count, nil
}

type notificationRepo struct {
	store *Store
}

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.jobs = append(r.store.jobs, job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type commandReads struct {
	store *Store
}

func (r *commandReads) ColumnByID(_ context.Context, id int64) (*shared.ColumnSnapshot, error) {
	state, ok := r.store.columns[id]
	if !ok {
		return nil, infra.WrapRepoErr("column not found", errNoRows, infra.KindNotFound)
	}
	return &shared.ColumnSnapshot{
		ID:             id,
		Number:         state.Number,
		IsAvailable:    state.IsAvailable,
		OfferedFuelIDs: append([]int64(nil), state.FuelIDs...),
	}, nil
}

// lockedReads and lockedIdempotency are the pool-level accessors used
// outside Within; they take the store lock per call.
type lockedReads struct {
	store *Store
}

func (r *lockedReads) ColumnByID(ctx context.Context, id int64) (*shared.ColumnSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&commandReads{store: r.store}).ColumnByID(ctx, id)
}

type lockedIdempotency struct {
	store *Store
}

func (r *lockedIdempotency) TryInsert(ctx context.Context, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&idempotencyRepo{store: r.store}).TryInsert(ctx, key, userID, endpoint, requestHash, expiresAt)
}

func (r *lockedIdempotency) Get(ctx context.Context, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&idempotencyRepo{store: r.store}).Get(ctx, key, userID)
}

func (r *lockedIdempotency) MarkCompleted(ctx context.Context, key uuid.UUID, userID int64, resultTransactionID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&idempotencyRepo{store: r.store}).MarkCompleted(ctx, key, userID, resultTransactionID)
}

func (r *lockedIdempotency) Delete(ctx context.Context, key uuid.UUID, userID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&idempotencyRepo{store: r.store}).Delete(ctx, key, userID)
}

func (r *lockedIdempotency) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&idempotencyRepo{store: r.store}).DeleteExpired(ctx, now)
}
