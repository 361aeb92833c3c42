package schedule

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentType is breeder-owned configuration: what kind of visit is
// offered, how long it takes, and how much idle time it needs around it.
type AppointmentType struct {
	id              uuid.UUID
	name            string
	durationMinutes int
	bufferBefore    int
	bufferAfter     int
	enabled         bool
}

func NewAppointmentType(id uuid.UUID, name string, durationMinutes, bufferBefore, bufferAfter int, enabled bool) (AppointmentType, error) {
	if durationMinutes <= 0 {
		return AppointmentType{}, ErrInvalidDuration
	}
	if bufferBefore < 0 || bufferAfter < 0 {
		return AppointmentType{}, ErrNegativeBuffer
	}
	return AppointmentType{
		id:              id,
		name:            name,
		durationMinutes: durationMinutes,
		bufferBefore:    bufferBefore,
		bufferAfter:     bufferAfter,
		enabled:         enabled,
	}, nil
}

func (t AppointmentType) ID() uuid.UUID        { return t.id }
func (t AppointmentType) Name() string         { return t.name }
func (t AppointmentType) DurationMinutes() int { return t.durationMinutes }
func (t AppointmentType) BufferBefore() int    { return t.bufferBefore }
func (t AppointmentType) BufferAfter() int     { return t.bufferAfter }
func (t AppointmentType) Enabled() bool        { return t.enabled }

func (t AppointmentType) Duration() time.Duration {
	return time.Duration(t.durationMinutes) * time.Minute
}

// BookingPolicy bounds when and at what granularity slots are offered.
type BookingPolicy struct {
	minAdvanceBookingHours int
	maxAdvanceBookingDays  int
	slotIntervalMinutes    int
	bookingPageEnabled     bool
}

const (
	DefaultMinAdvanceBookingHours = 24
	DefaultMaxAdvanceBookingDays  = 30
	DefaultSlotIntervalMinutes    = 30
)

func NewBookingPolicy(minAdvanceHours, maxAdvanceDays, slotIntervalMinutes int, pageEnabled bool) (BookingPolicy, error) {
	if minAdvanceHours < 0 || maxAdvanceDays < 0 {
		return BookingPolicy{}, ErrInvalidAdvanceRule
	}
	if slotIntervalMinutes <= 0 {
		return BookingPolicy{}, ErrInvalidSlotStride
	}
	return BookingPolicy{
		minAdvanceBookingHours: minAdvanceHours,
		maxAdvanceBookingDays:  maxAdvanceDays,
		slotIntervalMinutes:    slotIntervalMinutes,
		bookingPageEnabled:     pageEnabled,
	}, nil
}

func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		minAdvanceBookingHours: DefaultMinAdvanceBookingHours,
		maxAdvanceBookingDays:  DefaultMaxAdvanceBookingDays,
		slotIntervalMinutes:    DefaultSlotIntervalMinutes,
		bookingPageEnabled:     true,
	}
}

func (p BookingPolicy) MinAdvanceBookingHours() int { return p.minAdvanceBookingHours }
func (p BookingPolicy) MaxAdvanceBookingDays() int  { return p.maxAdvanceBookingDays }
func (p BookingPolicy) SlotIntervalMinutes() int    { return p.slotIntervalMinutes }
func (p BookingPolicy) BookingPageEnabled() bool    { return p.bookingPageEnabled }

func (p BookingPolicy) MinAdvance() time.Duration {
	return time.Duration(p.minAdvanceBookingHours) * time.Hour
}

// BookingWindow is the calendar date range a caller may request slots for.
// Both bounds are midnight-anchored dates, inclusive.
type BookingWindow struct {
	MinDate time.Time
	MaxDate time.Time
}

// WindowFrom derives the bookable date range relative to now: the earliest
// date is the day the advance-notice cutoff falls on, the latest is
// maxAdvanceBookingDays from today.
func (p BookingPolicy) WindowFrom(now time.Time) BookingWindow {
	earliest := now.Add(p.MinAdvance())
	return BookingWindow{
		MinDate: midnight(earliest),
		MaxDate: midnight(now).AddDate(0, 0, p.maxAdvanceBookingDays),
	}
}

func (w BookingWindow) Contains(date time.Time) bool {
	d := midnight(date)
	return !d.Before(w.MinDate) && !d.After(w.MaxDate)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
