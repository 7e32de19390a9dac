package shared

import (
	"context"
	"time"

	"fuelstation/internal/domain/column"
	"fuelstation/internal/domain/fuel"
	"fuelstation/internal/domain/reservation"
	"fuelstation/internal/domain/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfWork is the persistence collaborator: every command runs its
// check-and-mutate sequence inside Within so either everything commits or
// nothing does.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: latest-committed reads for validation outside transactions
	Reads() CommandReads
	// Idempotency: key claim/lookup outside transactions
	Idempotency() IdempotencyRepository
}

type Tx interface {
	Fuels() FuelRepository
	Columns() ColumnRepository
	Reservations() ReservationRepository
	Transactions() TransactionRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// FuelRepository guards stock. LockByID takes a row-level lock so the
// read-check-write sequence is atomic per fuel id, not globally.
type FuelRepository interface {
	LockByID(ctx context.Context, id int64) (*fuel.Fuel, error)
	UpdateVolume(ctx context.Context, id int64, volume decimal.Decimal) error
}

// ColumnRepository locks the column row that serializes conflict checks
// against concurrent reservation inserts on the same column.
type ColumnRepository interface {
	LockByID(ctx context.Context, id int64) (*column.Column, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	ActiveByColumn(ctx context.Context, columnID int64) ([]*reservation.Reservation, error)
	CountActiveByUserOnDay(ctx context.Context, userID int64, day time.Time) (int, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status) error
	// ExpireBefore flips every active reservation whose slot end is at or
	// before now; returns the number swept.
	ExpireBefore(ctx context.Context, now time.Time) (int64, error)
	ExpireByColumnBefore(ctx context.Context, columnID int64, now time.Time) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *transaction.Transaction) (int64, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key; reports false when the key already exists.
	TryInsert(ctx context.Context, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID int64) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key uuid.UUID, userID int64, resultTransactionID int64) error
	// Delete releases a claim so a retry with the same key can run.
	Delete(ctx context.Context, key uuid.UUID, userID int64) error
	// DeleteExpired removes every key whose TTL has passed; returns the
	// number removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// CommandReads are write-side snapshot lookups; snapshots keep the command
// layer off the read-model query types.
type CommandReads interface {
	ColumnByID(ctx context.Context, id int64) (*ColumnSnapshot, error)
}

type ColumnSnapshot struct {
	ID             int64
	Number         int
	IsAvailable    bool
	OfferedFuelIDs []int64
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              int64
	Status              string
	RequestHash         string
	ResultTransactionID *int64
	ExpiresAt           time.Time
}
