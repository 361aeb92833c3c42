package booking

import (
	"errors"
	"time"

	"kennelbook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

// Booking is one customer's claim on one slot. It is created exactly once
// when a visitor submits the public booking form and is never mutated by the
// slot generator.
type Booking struct {
	id                uuid.UUID
	breederID         uuid.UUID
	appointmentTypeID uuid.UUID
	customer          Customer
	startTime         time.Time
	endTime           time.Time
	durationMinutes   int
	status            Status
	notes             Notes
	bookedAt          time.Time
}

// NewBooking builds the record persisted on submission: the end time is
// derived from the type's duration and the initial status is always pending.
func NewBooking(
	breederID uuid.UUID,
	appointmentType schedule.AppointmentType,
	slotStart time.Time,
	customer Customer,
	notes Notes,
	now time.Time,
) *Booking {
	return &Booking{
		id:                uuid.New(),
		breederID:         breederID,
		appointmentTypeID: appointmentType.ID(),
		customer:          customer,
		startTime:         slotStart,
		endTime:           slotStart.Add(appointmentType.Duration()),
		durationMinutes:   appointmentType.DurationMinutes(),
		status:            StatusPending,
		notes:             notes,
		bookedAt:          now,
	}
}

func Reconstruct(
	id, breederID, appointmentTypeID uuid.UUID,
	customer Customer,
	startTime, endTime time.Time,
	durationMinutes int,
	status Status,
	notes Notes,
	bookedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		breederID:         breederID,
		appointmentTypeID: appointmentTypeID,
		customer:          customer,
		startTime:         startTime,
		endTime:           endTime,
		durationMinutes:   durationMinutes,
		status:            status,
		notes:             notes,
		bookedAt:          bookedAt,
	}
}

// TransitionTo enforces the lifecycle machine: pending may become confirmed
// or cancelled, terminal states never move again.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	b.status = next
	return nil
}

func (b *Booking) Interval() schedule.BookedInterval {
	return schedule.BookedInterval{Start: b.startTime, End: b.endTime}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) BreederID() uuid.UUID         { return b.breederID }
func (b *Booking) AppointmentTypeID() uuid.UUID { return b.appointmentTypeID }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) StartTime() time.Time         { return b.startTime }
func (b *Booking) EndTime() time.Time           { return b.endTime }
func (b *Booking) DurationMinutes() int         { return b.durationMinutes }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Notes() Notes                 { return b.notes }
func (b *Booking) BookedAt() time.Time          { return b.bookedAt }
