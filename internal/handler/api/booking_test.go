//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"kennelbook/internal/handler/api"
	resdto "kennelbook/internal/handler/dto/response"
	"kennelbook/internal/pkg/errs"
	"kennelbook/internal/usecase/commands"
	"kennelbook/tests/common/builder"
	"kennelbook/tests/common/httptest"
	"kennelbook/tests/common/testutil"
	commandsmock "kennelbook/tests/mock/commands"
	queriesmock "kennelbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	breederID    uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.breederID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("breeder_id", s.breederID)
		c.Set("breeder_role", "breeder")
		c.Next()
	}

	// Setup routes
	s.router.POST("/breeders/:breederId/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateBookingStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	url := "/breeders/" + b.BreederID.String() + "/bookings"
	idemHeader := map[string]string{"Idempotency-Key": uuid.NewString()}
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for a new booking", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idemHeader)

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: replayed request returns 200 OK", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idemHeader)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: missing idempotency key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	validation := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "missing field: appointment_type_id", mutate: testutil.Field("appointment_type_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_name", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_email", mutate: testutil.Field("customer_email", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "03/02/2026"), expectCode: http.StatusBadRequest},
		{name: "malformed start time", mutate: testutil.Field("start_time", "9am"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "", idemHeader)
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "breeder not found", err: errs.ErrBreederNotFound, expectCode: http.StatusNotFound},
		{name: "appointment type not found", err: errs.ErrAppointmentTypeNotFound, expectCode: http.StatusNotFound},
		{name: "booking unavailable", err: errs.ErrBookingUnavailable, expectCode: http.StatusNotFound},
		{name: "date out of range", err: errs.ErrDateOutOfRange, expectCode: http.StatusBadRequest},
		{name: "slot misaligned", err: errs.ErrSlotMisaligned, expectCode: http.StatusBadRequest},
		{name: "insufficient lead", err: errs.ErrInsufficientLead, expectCode: http.StatusBadRequest},
		{name: "slot taken", err: errs.ErrSlotTaken, expectCode: http.StatusConflict},
		{name: "duplicate request", err: errs.ErrDuplicateBooking, expectCode: http.StatusConflict},
		{name: "domain validation", err: errs.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idemHeader)

			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the breeder's own booking", func() {
		view := builder.NewBookingBuilder().WithBreederID(s.breederID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.BookingResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(view.ID.String(), resp.ID)
	})

	s.Run("error: other breeder's booking is 404", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	s.Run("success: confirms a pending booking", func() {
		view := builder.NewBookingBuilder().WithBreederID(s.breederID).BuildView()
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), s.breederID, view.ID, gomock.Any()).
			Return(view, nil)

		body := map[string]any{"status": "confirmed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/status", body, "token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: rejects a status outside the lifecycle", func() {
		body := map[string]any{"status": "archived"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", body, "token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: terminal booking conflicts", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), s.breederID, id, gomock.Any()).
			Return(nil, errs.ErrInvalidTransition)

		body := map[string]any{"status": "cancelled"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String()+"/status", body, "token")

		s.Equal(http.StatusConflict, rec.Code)
	})
}
