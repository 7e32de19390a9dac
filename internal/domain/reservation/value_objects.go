package reservation

import (
	"errors"
	"time"
)

var ErrZeroStart = errors.New("start time must be set")

// TimeSlot is the half-open interval [start, end) a reservation holds a
// column for. End is always start plus the fixed slot duration.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start time.Time, duration time.Duration) (TimeSlot, error) {
	if start.IsZero() {
		return TimeSlot{}, ErrZeroStart
	}
	if duration <= 0 {
		return TimeSlot{}, errors.New("slot duration must be positive")
	}

	return TimeSlot{
		start: start,
		end:   start.Add(duration),
	}, nil
}

// ReconstructSlot rebuilds a slot from stored endpoints without
// re-validating; storage is trusted.
func ReconstructSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses half-open semantics: slots that merely touch at an
// endpoint do not conflict.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// SameDay reports whether both slots start on the same calendar day,
// which is the unit the per-user reservation cap counts in.
func (ts TimeSlot) SameDay(other TimeSlot) bool {
	y1, m1, d1 := ts.start.Date()
	y2, m2, d2 := other.start.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (ts TimeSlot) HasExpiredAt(now time.Time) bool {
	return !ts.end.After(now)
}
