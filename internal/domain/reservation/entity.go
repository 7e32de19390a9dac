package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrNotActive     = errors.New("reservation is not active")
)

// Reservation is a 15-minute hold on one column by one user. It is born
// active and only ever transitions to cancelled or expired.
type Reservation struct {
	id        int64
	userID    int64
	columnID  int64
	slot      TimeSlot
	status    Status
	createdAt time.Time
}

func NewReservation(userID, columnID int64, slot TimeSlot, now time.Time) *Reservation {
	return &Reservation{
		userID:    userID,
		columnID:  columnID,
		slot:      slot,
		status:    StatusActive,
		createdAt: now,
	}
}

func Reconstruct(id, userID, columnID int64, slot TimeSlot, status Status, createdAt time.Time) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:        id,
		userID:    userID,
		columnID:  columnID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
	}, nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// Cancel is idempotent: cancelling an already-terminal reservation is a
// no-op and reports false.
func (r *Reservation) Cancel() bool {
	if r.status.IsTerminal() {
		return false
	}
	r.status = StatusCancelled
	return true
}

// ExpireAt flips an active reservation whose slot has passed to expired.
// It reports whether the state changed.
func (r *Reservation) ExpireAt(now time.Time) bool {
	if r.status != StatusActive {
		return false
	}
	if !r.slot.HasExpiredAt(now) {
		return false
	}
	r.status = StatusExpired
	return true
}

func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.columnID != other.columnID {
		return false
	}
	if !r.IsActive() || !other.IsActive() {
		return false
	}
	return r.slot.Overlaps(other.slot)
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) UserID() int64        { return r.userID }
func (r *Reservation) ColumnID() int64      { return r.columnID }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
