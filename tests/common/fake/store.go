//go:build unit

// Package fake provides an in-memory UnitOfWork with real transactional
// semantics: Within serializes callers under one lock and rolls the whole
// store back when the callback fails. That is enough to exercise the
// commands' check-and-mutate sequences, including the concurrency
// properties, without a database.
package fake

import (
	"sync"
	"time"

	"fuelstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fuelState struct {
	Name        string
	Price       decimal.Decimal
	Volume      decimal.Decimal
	IsAvailable bool
}

type columnState struct {
	Number      int
	IsAvailable bool
	FuelIDs     []int64
}

type reservationState struct {
	UserID    int64
	ColumnID  int64
	StartTime time.Time
	EndTime   time.Time
	Status    string
	CreatedAt time.Time
}

type transactionState struct {
	UserID        int64
	FuelID        int64
	ColumnID      int64
	Volume        decimal.Decimal
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Date          time.Time
}

type idemKey struct {
	Key    uuid.UUID
	UserID int64
}

type job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

// Store holds the whole station state. The zero value is not usable; use
// NewStore and the Seed helpers.
type Store struct {
	mu sync.Mutex

	fuels        map[int64]*fuelState
	columns      map[int64]*columnState
	reservations map[int64]*reservationState
	transactions map[int64]*transactionState
	idempotency  map[idemKey]*shared.IdempotencyRecord
	jobs         []job

	nextReservationID int64
	nextTransactionID int64
}

func NewStore() *Store {
	return &Store{
		fuels:        make(map[int64]*fuelState),
		columns:      make(map[int64]*columnState),
		reservations: make(map[int64]*reservationState),
		transactions: make(map[int64]*transactionState),
		idempotency:  make(map[idemKey]*shared.IdempotencyRecord),
	}
}

func (s *Store) SeedFuel(id int64, name string, price, volume decimal.Decimal, isAvailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fuels[id] = &fuelState{Name: name, Price: price, Volume: volume, IsAvailable: isAvailable}
}

func (s *Store) SeedColumn(id int64, number int, isAvailable bool, fuelIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.columns[id] = &columnState{Number: number, IsAvailable: isAvailable, FuelIDs: append([]int64(nil), fuelIDs...)}
}

func (s *Store) FuelVolume(id int64) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fuels[id].Volume
}

func (s *Store) ReservationStatus(id int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reservations[id]; ok {
		return r.Status
	}
	return ""
}

func (s *Store) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

func (s *Store) JobTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	topics := make([]string, 0, len(s.jobs))
	for _, j := range s.jobs {
		topics = append(topics, j.Topic)
	}
	return topics
}

// snapshot and restore implement rollback. Maps are copied shallowly with
// value copies of each row, which is deep enough because row structs hold
// no pointers into shared state.
func (s *Store) snapshot() *storeSnapshot {
	snap := &storeSnapshot{
		fuels:             make(map[int64]*fuelState, len(s.fuels)),
		columns:           make(map[int64]*columnState, len(s.columns)),
		reservations:      make(map[int64]*reservationState, len(s.reservations)),
		transactions:      make(map[int64]*transactionState, len(s.transactions)),
		idempotency:       make(map[idemKey]*shared.IdempotencyRecord, len(s.idempotency)),
		jobs:              append([]job(nil), s.jobs...),
		nextReservationID: s.nextReservationID,
		nextTransactionID: s.nextTransactionID,
	}
	for id, f := range s.fuels {
		cp := *f
		snap.fuels[id] = &cp
	}
	for id, c := range s.columns {
		cp := *c
		cp.FuelIDs = append([]int64(nil), c.FuelIDs...)
		snap.columns[id] = &cp
	}
	for id, r := range s.reservations {
		cp := *r
		snap.reservations[id] = &cp
	}
	for id, t := range s.transactions {
		cp := *t
		snap.transactions[id] = &cp
	}
	for k, rec := range s.idempotency {
		cp := *rec
		if rec.ResultTransactionID != nil {
			v := *rec.ResultTransactionID
			cp.ResultTransactionID = &v
		}
		snap.idempotency[k] = &cp
	}
	return snap
}

type storeSnapshot struct {
	fuels             map[int64]*fuelState
	columns           map[int64]*columnState
	reservations      map[int64]*reservationState
	transactions      map[int64]*transactionState
	idempotency       map[idemKey]*shared.IdempotencyRecord
	jobs              []job
	nextReservationID int64
	nextTransactionID int64
}

func (s *Store) restore(snap *storeSnapshot) {
	s.fuels = snap.fuels
	s.columns = snap.columns
	s.reservations = snap.reservations
	s.transactions = snap.transactions
	s.idempotency = snap.idempotency
	s.jobs = snap.jobs
	s.nextReservationID = snap.nextReservationID
	s.nextTransactionID = snap.nextTransactionID
}
