//go:build unit || e2e

package builder

import (
	"time"

	dombooking "kennelbook/internal/domain/booking"
	"kennelbook/internal/domain/schedule"
	reqdto "kennelbook/internal/handler/dto/request"
	"kennelbook/internal/usecase/queries"
	"kennelbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingBuilder produces consistent fixtures across layers: a breeder with
// weekday 09:00-12:00 availability, a 30-minute appointment type with no
// buffers, and a default policy (24h lead, 30 days out, 30-minute stride).
type BookingBuilder struct {
	BreederID           uuid.UUID
	BreederName         string
	AppointmentTypeID   uuid.UUID
	AppointmentTypeName string
	DurationMinutes     int
	BufferBefore        int
	BufferAfter         int
	TypeEnabled         bool
	PageEnabled         bool
	MinAdvanceHours     int
	MaxAdvanceDays      int
	SlotInterval        int
	Date                time.Time
	StartMinute         int
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	Notes               string
	Status              string
	BookedAt            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BreederID:           uuid.New(),
		BreederName:         "Willow Creek Kennels",
		AppointmentTypeID:   uuid.New(),
		AppointmentTypeName: "Puppy Visit",
		DurationMinutes:     30,
		BufferBefore:        0,
		BufferAfter:         0,
		TypeEnabled:         true,
		PageEnabled:         true,
		MinAdvanceHours:     schedule.DefaultMinAdvanceBookingHours,
		MaxAdvanceDays:      schedule.DefaultMaxAdvanceBookingDays,
		SlotInterval:        schedule.DefaultSlotIntervalMinutes,
		Date:                time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), // a Monday
		StartMinute:         9 * 60,
		CustomerName:        "Jamie Doe",
		CustomerEmail:       "jamie@example.com",
		CustomerPhone:       "555-0101",
		Notes:               "First visit, bringing the kids",
		Status:              "pending",
		BookedAt:            time.Date(2026, 2, 20, 10, 0, 0, 0, time.Local),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithBreederID(id uuid.UUID) *BookingBuilder {
	b.BreederID = id
	return b
}

func (b *BookingBuilder) WithAppointmentTypeID(id uuid.UUID) *BookingBuilder {
	b.AppointmentTypeID = id
	return b
}

func (b *BookingBuilder) WithBuffers(before, after int) *BookingBuilder {
	b.BufferBefore = before
	b.BufferAfter = after
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithStartMinute(minute int) *BookingBuilder {
	b.StartMinute = minute
	return b
}

func (b *BookingBuilder) WithPageDisabled() *BookingBuilder {
	b.PageEnabled = false
	return b
}

func (b *BookingBuilder) WithTypeDisabled() *BookingBuilder {
	b.TypeEnabled = false
	return b
}

// Build methods
func (b *BookingBuilder) BuildAppointmentType() schedule.AppointmentType {
	t, err := schedule.NewAppointmentType(
		b.AppointmentTypeID, b.AppointmentTypeName,
		b.DurationMinutes, b.BufferBefore, b.BufferAfter, b.TypeEnabled,
	)
	if err != nil {
		panic(err)
	}
	return t
}

func (b *BookingBuilder) BuildPolicy() schedule.BookingPolicy {
	p, err := schedule.NewBookingPolicy(b.MinAdvanceHours, b.MaxAdvanceDays, b.SlotInterval, b.PageEnabled)
	if err != nil {
		panic(err)
	}
	return p
}

func (b *BookingBuilder) BuildAvailability() schedule.WeeklyAvailability {
	morning, err := schedule.NewTimeRange(9*60, 12*60)
	if err != nil {
		panic(err)
	}
	availability, err := schedule.NewWeeklyAvailability(map[schedule.DayOfWeek][]schedule.TimeRange{
		schedule.Monday:    {morning},
		schedule.Tuesday:   {morning},
		schedule.Wednesday: {morning},
		schedule.Thursday:  {morning},
		schedule.Friday:    {morning},
	})
	if err != nil {
		panic(err)
	}
	return availability
}

func (b *BookingBuilder) BuildSettings() *shared.BreederSettings {
	return &shared.BreederSettings{
		BreederID:    b.BreederID,
		Name:         b.BreederName,
		Policy:       b.BuildPolicy(),
		Availability: b.BuildAvailability(),
		Types:        []schedule.AppointmentType{b.BuildAppointmentType()},
	}
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	customer, err := dombooking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		panic(err)
	}
	notes, err := dombooking.NewNotes(b.Notes)
	if err != nil {
		panic(err)
	}
	slotStart := b.Date.Add(time.Duration(b.StartMinute) * time.Minute)
	return dombooking.NewBooking(b.BreederID, b.BuildAppointmentType(), slotStart, customer, notes, b.BookedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	start := b.Date.Add(time.Duration(b.StartMinute) * time.Minute)
	return reqdto.CreateBookingRequest{
		AppointmentTypeID: b.AppointmentTypeID,
		Date:              b.Date.Format("2006-01-02"),
		StartTime:         start.Format("15:04"),
		CustomerName:      b.CustomerName,
		CustomerEmail:     b.CustomerEmail,
		CustomerPhone:     b.CustomerPhone,
		Notes:             b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	start := b.Date.Add(time.Duration(b.StartMinute) * time.Minute)
	return &queries.BookingView{
		ID:                  uuid.New(),
		BreederID:           b.BreederID,
		AppointmentTypeID:   b.AppointmentTypeID,
		AppointmentTypeName: b.AppointmentTypeName,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		StartTime:           start,
		EndTime:             start.Add(time.Duration(b.DurationMinutes) * time.Minute),
		DurationMinutes:     b.DurationMinutes,
		Status:              b.Status,
		Notes:               b.Notes,
		BookedAt:            b.BookedAt,
	}
}
