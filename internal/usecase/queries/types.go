package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                  uuid.UUID `json:"id"`
	BreederID           uuid.UUID `json:"breeder_id"`
	AppointmentTypeID   uuid.UUID `json:"appointment_type_id"`
	AppointmentTypeName string    `json:"appointment_type_name"`
	CustomerName        string    `json:"customer_name"`
	CustomerEmail       string    `json:"customer_email"`
	CustomerPhone       string    `json:"customer_phone"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	DurationMinutes     int       `json:"duration_minutes"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes"`
	BookedAt            time.Time `json:"booked_at"`
}

// AvailableDatesView is the calendar window the public page may request
// slots within, both bounds inclusive, formatted as 2006-01-02.
type AvailableDatesView struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}
