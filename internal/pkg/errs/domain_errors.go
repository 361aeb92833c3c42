package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Breeder configuration errors
	ErrBreederNotFound         = errors.New("breeder not found")
	ErrBookingUnavailable      = errors.New("booking unavailable")
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")

	// Slot validation errors
	ErrDateOutOfRange   = errors.New("date outside bookable window")
	ErrSlotMisaligned   = errors.New("slot does not align with availability")
	ErrInsufficientLead = errors.New("insufficient advance notice")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotTaken         = errors.New("slot already taken")
	ErrDuplicateBooking  = errors.New("duplicate booking request")
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
