package api

import (
	"errors"
	"net/http"
	"time"

	resdto "kennelbook/internal/handler/dto/response"
	"kennelbook/internal/pkg/errs"
	"kennelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SlotsHandler serves the public booking page: the bookable date window and
// the open slots for one appointment type on one date. No authentication,
// these endpoints are reachable by any visitor.
type SlotsHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotsHandler(slotQueries queries.SlotQueries) *SlotsHandler {
	return &SlotsHandler{
		slotQueries: slotQueries,
	}
}

// @Summary Get bookable date window
// @Description Get the min and max date a visitor may request slots for
// @Tags slots
// @Produce json
// @Param breederId path string true "Breeder ID"
// @Success 200 {object} resdto.AvailableDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /breeders/{breederId}/available-dates [get]
func (h *SlotsHandler) GetAvailableDates(c *gin.Context) {
	breederID, err := uuid.Parse(c.Param("breederId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid breeder ID format",
		})
		return
	}

	view, err := h.slotQueries.AvailableDates(c.Request.Context(), breederID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBreederNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Breeder not found",
			})
		case errors.Is(err, errs.ErrBookingUnavailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Online booking is not available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableDatesView(view))
}

// @Summary Get available slots
// @Description Get open slot start times for an appointment type on a date
// @Tags slots
// @Produce json
// @Param breederId path string true "Breeder ID"
// @Param appointment_type_id query string true "Appointment type ID"
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /breeders/{breederId}/slots [get]
func (h *SlotsHandler) GetAvailableSlots(c *gin.Context) {
	breederID, err := uuid.Parse(c.Param("breederId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid breeder ID format",
		})
		return
	}

	appointmentTypeID, err := uuid.Parse(c.Query("appointment_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment type ID format",
		})
		return
	}

	dateStr := c.Query("date")
	date, err := time.ParseInLocation(queries.DateFormat, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected 2006-01-02",
		})
		return
	}

	slots, err := h.slotQueries.AvailableSlots(c.Request.Context(), breederID, appointmentTypeID, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBreederNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Breeder not found",
			})
		case errors.Is(err, errs.ErrAppointmentTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment type not found",
			})
		case errors.Is(err, errs.ErrBookingUnavailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Online booking is not available",
			})
		case errors.Is(err, errs.ErrDateOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date is outside the bookable window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, resdto.SlotsResponse{
		Date:  dateStr,
		Slots: slots,
	})
}
