//go:build unit

package fake

import (
	"context"
	"time"

	"fuelstation/internal/infra"
	"fuelstation/internal/usecase/queries"
)

// View repos over the same store, so the commands' read-after-write
// lookups observe exactly what Within committed.

type ReservationViews struct {
	store *Store
}

func NewReservationViews(store *Store) *ReservationViews {
	return &ReservationViews{store: store}
}

func (v *ReservationViews) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return v.buildView(id)
}

func (v *ReservationViews) FindActiveByUser(_ context.Context, userID int64, fromDate time.Time) ([]*queries.ReservationView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	var result []*queries.ReservationView
	for id, state := range v.store.reservations {
		if state.UserID != userID || state.Status != "active" {
			continue
		}
		if state.StartTime.Before(fromDate) {
			continue
		}
		view, err := v.buildView(id)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (v *ReservationViews) FindActiveByColumn(_ context.Context, columnID int64) ([]*queries.ReservationView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	var result []*queries.ReservationView
	for id, state := range v.store.reservations {
		if state.ColumnID != columnID || state.Status != "active" {
			continue
		}
		view, err := v.buildView(id)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (v *ReservationViews) buildView(id int64) (*queries.ReservationView, error) {
	state, ok := v.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	number := 0
	if col, colOK := v.store.columns[state.ColumnID]; colOK {
		number = col.Number
	}
	return &queries.ReservationView{
		ID:           id,
		UserID:       state.UserID,
		ColumnID:     state.ColumnID,
		ColumnNumber: number,
		StartTime:    state.StartTime,
		EndTime:      state.EndTime,
		Status:       state.Status,
		CreatedAt:    state.CreatedAt,
	}, nil
}

type TransactionViews struct {
	store *Store
}

func NewTransactionViews(store *Store) *TransactionViews {
	return &TransactionViews{store: store}
}

func (v *TransactionViews) FindByID(_ context.Context, id int64) (*queries.TransactionView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return v.buildView(id)
}

func (v *TransactionViews) FindByUser(_ context.Context, userID int64) ([]*queries.TransactionView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	var result []*queries.TransactionView
	for id, state := range v.store.transactions {
		if state.UserID != userID {
			continue
		}
		view, err := v.buildView(id)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (v *TransactionViews) buildView(id int64) (*queries.TransactionView, error) {
	state, ok := v.store.transactions[id]
	if !ok {
		return nil, infra.WrapRepoErr("transaction not found", errNoRows, infra.KindNotFound)
	}
	fuelName := ""
	if f, fuelOK := v.store.fuels[state.FuelID]; fuelOK {
		fuelName = f.Name
	}
	number := 0
	if col, colOK := v.store.columns[state.ColumnID]; colOK {
		number = col.Number
	}
	return &queries.TransactionView{
		ID:            id,
		UserID:        state.UserID,
		FuelID:        state.FuelID,
		FuelName:      fuelName,
		ColumnID:      state.ColumnID,
		ColumnNumber:  number,
		Volume:        state.Volume,
		UnitPrice:     state.UnitPrice,
		Total:         state.Total,
		PaymentMethod: state.PaymentMethod,
		Date:          state.Date,
	}, nil
}
