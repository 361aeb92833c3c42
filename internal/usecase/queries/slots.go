package queries

import (
	"context"
	"time"

	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra"
	"kennelbook/internal/pkg/clock"
	"kennelbook/internal/pkg/errs"
	"kennelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DateFormat = "2006-01-02"
	SlotFormat = "15:04"
)

type SlotQueries interface {
	AvailableDates(ctx context.Context, breederID uuid.UUID) (*AvailableDatesView, error)
	AvailableSlots(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time) ([]string, error)
}

// BookingIntervalReader lists the occupied intervals of non-cancelled
// bookings on one calendar date.
type BookingIntervalReader interface {
	BlockingIntervalsForDate(ctx context.Context, breederID uuid.UUID, date time.Time) ([]schedule.BookedInterval, error)
}

// SlotCache is a read-through cache of formatted slot lists. A nil-safe noop
// implementation is used when Redis is not configured.
type SlotCache interface {
	Get(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time) ([]string, bool)
	Set(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time, slots []string)
}

type slotQueriesImpl struct {
	settings  shared.SettingsReader
	intervals BookingIntervalReader
	cache     SlotCache
	clock     clock.Clock
}

func NewSlotQueries(
	settings shared.SettingsReader,
	intervals BookingIntervalReader,
	cache SlotCache,
	clock clock.Clock,
) SlotQueries {
	return &slotQueriesImpl{
		settings:  settings,
		intervals: intervals,
		cache:     cache,
		clock:     clock,
	}
}

func (q *slotQueriesImpl) AvailableDates(ctx context.Context, breederID uuid.UUID) (*AvailableDatesView, error) {
	settings, err := q.loadSettings(ctx, breederID)
	if err != nil {
		return nil, err
	}
	if !settings.Policy.BookingPageEnabled() {
		return nil, errs.ErrBookingUnavailable
	}

	window := settings.Policy.WindowFrom(q.clock.Now())
	return &AvailableDatesView{
		MinDate: window.MinDate.Format(DateFormat),
		MaxDate: window.MaxDate.Format(DateFormat),
	}, nil
}

// AvailableSlots is the public page's slot listing. The generator itself is
// pure; everything stateful (settings, bookings, clock, cache) is gathered
// here before it runs.
func (q *slotQueriesImpl) AvailableSlots(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time) ([]string, error) {
	settings, err := q.loadSettings(ctx, breederID)
	if err != nil {
		return nil, err
	}
	if !settings.Policy.BookingPageEnabled() {
		return nil, errs.ErrBookingUnavailable
	}

	appointmentType, ok := settings.AppointmentType(appointmentTypeID)
	if !ok {
		return nil, errs.ErrAppointmentTypeNotFound
	}
	if !appointmentType.Enabled() {
		return nil, errs.ErrBookingUnavailable
	}

	now := q.clock.Now()
	if !settings.Policy.WindowFrom(now).Contains(date) {
		return nil, errs.ErrDateOutOfRange
	}

	if cached, ok := q.cache.Get(ctx, breederID, appointmentTypeID, date); ok {
		return cached, nil
	}

	booked, err := q.intervals.BlockingIntervalsForDate(ctx, breederID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for date")
	}

	slots := schedule.GenerateSlots(date, appointmentType, settings.Availability, settings.Policy, now, booked)
	formatted := make([]string, len(slots))
	for i, s := range slots {
		formatted[i] = s.Start.Format(SlotFormat)
	}

	q.cache.Set(ctx, breederID, appointmentTypeID, date, formatted)
	return formatted, nil
}

func (q *slotQueriesImpl) loadSettings(ctx context.Context, breederID uuid.UUID) (*shared.BreederSettings, error) {
	settings, err := q.settings.LoadSettings(ctx, breederID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBreederNotFound
		}
		return nil, err
	}
	return settings, nil
}
