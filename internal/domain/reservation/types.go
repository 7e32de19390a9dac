package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can no longer change. Cancelled
// and expired are both terminal; there is no way back to active.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusExpired
}
