package api

import (
	"errors"
	"net/http"
	"time"

	"kennelbook/internal/domain/booking"
	reqdto "kennelbook/internal/handler/dto/request"
	resdto "kennelbook/internal/handler/dto/response"
	"kennelbook/internal/handler/middleware"
	"kennelbook/internal/pkg/errs"
	"kennelbook/internal/usecase/commands"
	"kennelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Submit a booking for an open slot, with idempotency key
// @Tags bookings
// @Accept json
// @Produce json
// @Param breederId path string true "Breeder ID"
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse "Replay of a completed request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /breeders/{breederId}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	breederID, err := uuid.Parse(c.Param("breederId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid breeder ID format",
		})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	startMinute, err := req.ParseStartMinute()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	params := commands.CreateBookingParams{
		BreederID:         breederID,
		AppointmentTypeID: req.AppointmentTypeID,
		Date:              date,
		SlotStartMinute:   startMinute,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		Notes:             req.Notes,
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), params, idempotencyKey)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
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
	case errors.Is(err, errs.ErrSlotMisaligned):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requested time is not a bookable slot",
		})
	case errors.Is(err, errs.ErrInsufficientLead):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Insufficient advance notice for booking",
		})
	case errors.Is(err, errs.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot was just taken, please pick another",
		})
	case errors.Is(err, errs.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate booking request with different parameters",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking details failed validation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Get booking by ID, scoped to the authenticated breeder
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	breederID, ok := middleware.GetBreederID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Bookings belonging to other breeders look exactly like missing ones.
	if view.BreederID != breederID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings for a date
// @Description List the authenticated breeder's bookings on a calendar date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	breederID, ok := middleware.GetBreederID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	date, err := time.ParseInLocation(queries.DateFormat, c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected 2006-01-02",
		})
		return
	}

	views, err := h.bookingQueries.ListForBreederDate(c.Request.Context(), breederID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Update booking status
// @Description Confirm or cancel a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	breederID, ok := middleware.GetBreederID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Status must be confirmed or cancelled",
		})
		return
	}

	view, err := h.bookingCommands.UpdateBookingStatus(c.Request.Context(), breederID, id, booking.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not pending",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
