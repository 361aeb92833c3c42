package response

import (
	"time"

	"kennelbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                  string    `json:"id"`
	BreederID           string    `json:"breederId"`
	AppointmentTypeID   string    `json:"appointmentTypeId"`
	AppointmentTypeName string    `json:"appointmentTypeName"`
	CustomerName        string    `json:"customerName"`
	CustomerEmail       string    `json:"customerEmail"`
	CustomerPhone       string    `json:"customerPhone"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	DurationMinutes     int       `json:"durationMinutes"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes"`
	BookedAt            time.Time `json:"bookedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.ID = rm.ID.String()
	resp.BreederID = rm.BreederID.String()
	resp.AppointmentTypeID = rm.AppointmentTypeID.String()
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromBookingView(rm)
	}
	return resps
}

type AvailableDatesResponse struct {
	MinDate string `json:"minDate"`
	MaxDate string `json:"maxDate"`
}

func FromAvailableDatesView(rm *queries.AvailableDatesView) *AvailableDatesResponse {
	return &AvailableDatesResponse{
		MinDate: rm.MinDate,
		MaxDate: rm.MaxDate,
	}
}

// SlotsResponse lists bookable start times, already filtered by
// availability, conflicts and the advance window.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
