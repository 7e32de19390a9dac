package errs

import "errors"

// Domain-specific sentinel errors returned by the usecase layers
var (
	// Catalog errors
	ErrColumnNotFound         = errors.New("column not found")
	ErrColumnUnavailable      = errors.New("column is not available")
	ErrFuelNotFound           = errors.New("fuel not found")
	ErrFuelNotOfferedAtColumn = errors.New("fuel not offered at column")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotConflict        = errors.New("reservation slot conflict")
	ErrDailyLimitExceeded  = errors.New("daily reservation limit exceeded")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")

	// Purchase errors
	ErrInvalidVolume        = errors.New("invalid volume")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrDuplicatePurchase      = errors.New("duplicate purchase request")

	// Storage errors
	ErrPersistenceFailure = errors.New("persistence failure")
)
