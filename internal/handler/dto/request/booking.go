package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("date must be formatted as 2006-01-02")
	ErrInvalidSlotStart = errors.New("start_time must be formatted as 15:04")
)

type CreateBookingRequest struct {
	AppointmentTypeID uuid.UUID `json:"appointment_type_id" binding:"required"`
	Date              string    `json:"date" binding:"required"`
	StartTime         string    `json:"start_time" binding:"required"`
	CustomerName      string    `json:"customer_name" binding:"required"`
	CustomerEmail     string    `json:"customer_email" binding:"required"`
	CustomerPhone     string    `json:"customer_phone"`
	Notes             string    `json:"notes"`
}

// ParseDate returns the requested calendar date at local midnight.
func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(r.Date), time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ParseStartMinute converts the wall-clock slot start into minutes from
// midnight, the unit the schedule domain works in.
func (r CreateBookingRequest) ParseStartMinute() (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(r.StartTime))
	if err != nil {
		return 0, ErrInvalidSlotStart
	}
	return t.Hour()*60 + t.Minute(), nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}
