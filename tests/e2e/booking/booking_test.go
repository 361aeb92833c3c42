//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"kennelbook/internal/handler/dto/request"
	"kennelbook/internal/handler/dto/response"
	"kennelbook/tests/common/authtest"
	"kennelbook/tests/common/dbtest"
	"kennelbook/tests/common/httptest"
	"kennelbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availableDatesURL = "/api/breeders/%s/available-dates"
	slotsURL          = "/api/breeders/%s/slots?appointment_type_id=%s&date=%s"
	createBookingURL  = "/api/breeders/%s/bookings"
	bookingsURL       = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// nextOpenDate returns the first weekday at least two days out, which sits
// comfortably inside the seeded 24h..30d booking window.
func nextOpenDate() time.Time {
	d := time.Now().In(time.Local).AddDate(0, 0, 2)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// nextClosedDate returns the first Saturday at least two days out. The
// seeded breeder only opens Monday through Friday.
func nextClosedDate() time.Time {
	d := time.Now().In(time.Local).AddDate(0, 0, 2)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func buildCreateRequest(fixture dbtest.BreederFixture, date time.Time, startTime string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		AppointmentTypeID: fixture.AppointmentTypeID,
		Date:              date.Format("2006-01-02"),
		StartTime:         startTime,
		CustomerName:      "Jamie Doe",
		CustomerEmail:     "jamie@example.com",
		CustomerPhone:     "555-0100",
		Notes:             "First visit with the new puppy",
	}
}

func (s *BookingSuite) getSlots(fixture dbtest.BreederFixture, date time.Time) []string {
	t := s.T()
	url := fmt.Sprintf(slotsURL, fixture.BreederID, fixture.AppointmentTypeID, date.Format("2006-01-02"))
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.SlotsResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp.Slots
}

// =============================================================================
// TestPublicBookingPage - visitor-facing slot browsing
// =============================================================================

func (s *BookingSuite) TestPublicBookingPage() {
	s.Run("Normal case: date window matches the breeder's booking policy", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availableDatesURL, fixture.BreederID), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.AvailableDatesResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))

		minDate, err := time.ParseInLocation("2006-01-02", resp.MinDate, time.Local)
		require.NoError(t, err)
		maxDate, err := time.ParseInLocation("2006-01-02", resp.MaxDate, time.Local)
		require.NoError(t, err)
		require.Equal(t, 29, int(maxDate.Sub(minDate).Hours()/24),
			"window should span min-advance 24h through max-advance 30 days")
	})

	s.Run("Normal case: a weekday morning lists every half-hour slot", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)

		slots := s.getSlots(fixture, nextOpenDate())

		expected := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
		if diff := cmp.Diff(expected, slots); diff != "" {
			t.Errorf("Slot list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a closed day has no slots", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)

		slots := s.getSlots(fixture, nextClosedDate())
		require.Empty(t, slots)
	})

	s.Run("Error case: unknown breeder is 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availableDatesURL, uuid.New()), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: date beyond the window is 400", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)

		farOut := time.Now().AddDate(0, 2, 0)
		url := fmt.Sprintf(slotsURL, fixture.BreederID, fixture.AppointmentTypeID, farOut.Format("2006-01-02"))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestCreateBooking - booking submission and idempotency
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking a slot removes it from the page", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		date := nextOpenDate()
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			buildCreateRequest(fixture, date, "09:00"), "",
			map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "Puppy Visit", created.AppointmentTypeName)

		slots := s.getSlots(fixture, date)
		require.NotContains(t, slots, "09:00")
		require.Contains(t, slots, "09:30")
	})

	s.Run("Normal case: buffers widen the blocked interval", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 30, 30)
		date := nextOpenDate()
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			buildCreateRequest(fixture, date, "10:00"), "",
			map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// The 10:00 booking buffered by 30min on both sides blocks
		// 09:30-11:00. Candidate intervals stay raw, so slots merely
		// touching those edges (09:00 ending 09:30, 11:00) remain open.
		slots := s.getSlots(fixture, date)
		require.NotContains(t, slots, "09:30")
		require.NotContains(t, slots, "10:00")
		require.NotContains(t, slots, "10:30")
		require.Contains(t, slots, "09:00")
		require.Contains(t, slots, "11:00")
	})

	s.Run("Normal case: replaying the same key returns the original booking", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		date := nextOpenDate()
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)
		key := uuid.NewString()
		reqBody := buildCreateRequest(fixture, date, "09:30")

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			reqBody, "", map[string]string{"Idempotency-Key": key})
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())
		var first response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			reqBody, "", map[string]string{"Idempotency-Key": key})
		require.Equal(t, http.StatusOK, w2.Code, "replay should not create twice")
		var second response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.Equal(t, first.ID, second.ID)
	})

	s.Run("Error case: same key with a different payload conflicts", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		date := nextOpenDate()
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)
		key := uuid.NewString()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			buildCreateRequest(fixture, date, "09:00"), "", map[string]string{"Idempotency-Key": key})
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			buildCreateRequest(fixture, date, "10:00"), "", map[string]string{"Idempotency-Key": key})
		require.Equal(t, http.StatusConflict, w2.Code)
	})

	s.Run("Error case: concurrent requests for one slot leave a single booking", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		date := nextOpenDate()
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)

		const racers = 4
		codes := make([]int, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
					buildCreateRequest(fixture, date, "11:00"), "",
					map[string]string{"Idempotency-Key": uuid.NewString()})
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		winners := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				winners++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status %d in slot race", code)
			}
		}
		require.Equal(t, 1, winners, "exactly one request should win the slot")

		var count int
		err := s.DB.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM bookings WHERE breeder_id = $1 AND status <> 'cancelled'`,
			fixture.BreederID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Error case: misaligned start time is 400", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			buildCreateRequest(fixture, nextOpenDate(), "09:10"), "",
			map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: missing idempotency key is 400", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		url := fmt.Sprintf(createBookingURL, fixture.BreederID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			buildCreateRequest(fixture, nextOpenDate(), "09:00"), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestBookingLifecycle - breeder tooling behind JWT auth
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	createBooking := func(t *testing.T, fixture dbtest.BreederFixture, date time.Time, startTime string) response.BookingResponse {
		t.Helper()
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost,
			fmt.Sprintf(createBookingURL, fixture.BreederID),
			buildCreateRequest(fixture, date, startTime), "",
			map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		return created
	}

	s.Run("Normal case: breeder sees the day's bookings", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		date := nextOpenDate()
		created := createBooking(t, fixture, date, "09:00")

		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, fixture.BreederID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?date="+date.Format("2006-01-02"), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)
		require.Equal(t, "jamie@example.com", listed[0].CustomerEmail)
	})

	s.Run("Normal case: confirming a pending booking", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		created := createBooking(t, fixture, nextOpenDate(), "09:00")

		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, fixture.BreederID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+created.ID+"/status",
			request.UpdateBookingStatusRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "confirmed", updated.Status)

		// terminal state, a second transition conflicts
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+created.ID+"/status",
			request.UpdateBookingStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusConflict, w2.Code)
	})

	s.Run("Normal case: cancelling reopens the slot", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		date := nextOpenDate()
		created := createBooking(t, fixture, date, "10:00")
		require.NotContains(t, s.getSlots(fixture, date), "10:00")

		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, fixture.BreederID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+created.ID+"/status",
			request.UpdateBookingStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Contains(t, s.getSlots(fixture, date), "10:00")
	})

	s.Run("Error case: another breeder's booking looks missing", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)
		other := dbtest.CreateTestBreeder(t, s.DB, "Hilltop Shepherds", 0, 0)
		created := createBooking(t, fixture, nextOpenDate(), "09:00")

		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, other.BreederID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test: missing and expired tokens are 401", func() {
		t := s.T()
		fixture := dbtest.CreateTestBreeder(t, s.DB, "Willow Creek Kennels", 0, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?date=2026-03-02", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, fixture.BreederID)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?date=2026-03-02", nil, expired)
		require.Equal(t, http.StatusUnauthorized, w2.Code)
	})
}
