//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra"
	"kennelbook/internal/pkg/clock"
	"kennelbook/internal/pkg/errs"
	"kennelbook/internal/usecase/queries"
	"kennelbook/tests/common/builder"
	queriesmock "kennelbook/tests/mock/queries"
	sharedmock "kennelbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSettings  *sharedmock.MockSettingsReader
	mockIntervals *queriesmock.MockBookingIntervalReader
	mockCache     *queriesmock.MockSlotCache
	clock         *clock.MockClock
	queries       queries.SlotQueries
}

func (s *SlotQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettings = sharedmock.NewMockSettingsReader(s.mockCtrl)
	s.mockIntervals = queriesmock.NewMockBookingIntervalReader(s.mockCtrl)
	s.mockCache = queriesmock.NewMockSlotCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 2, 20, 10, 0, 0, 0, time.Local))
	s.queries = queries.NewSlotQueries(s.mockSettings, s.mockIntervals, s.mockCache, s.clock)
}

func (s *SlotQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotQueriesSuite(t *testing.T) {
	suite.Run(t, new(SlotQueriesTestSuite))
}

// monday is a Monday comfortably inside the default booking window
// relative to the suite's clock.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

func (s *SlotQueriesTestSuite) TestAvailableSlots() {
	ctx := context.Background()

	s.Run("success: full morning of half-hour slots", func() {
		b := builder.NewBookingBuilder()
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)
		s.mockCache.EXPECT().Get(ctx, b.BreederID, b.AppointmentTypeID, monday).Return(nil, false)
		s.mockIntervals.EXPECT().BlockingIntervalsForDate(ctx, b.BreederID, monday).Return(nil, nil)
		s.mockCache.EXPECT().Set(ctx, b.BreederID, b.AppointmentTypeID, monday, gomock.Any())

		slots, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, monday)

		s.Require().NoError(err)
		s.Equal([]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
	})

	s.Run("success: booked interval removes overlapping slots", func() {
		b := builder.NewBookingBuilder()
		booked := []schedule.BookedInterval{
			{Start: monday.Add(10 * time.Hour), End: monday.Add(10*time.Hour + 30*time.Minute)},
		}
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)
		s.mockCache.EXPECT().Get(ctx, b.BreederID, b.AppointmentTypeID, monday).Return(nil, false)
		s.mockIntervals.EXPECT().BlockingIntervalsForDate(ctx, b.BreederID, monday).Return(booked, nil)
		s.mockCache.EXPECT().Set(ctx, b.BreederID, b.AppointmentTypeID, monday, gomock.Any())

		slots, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, monday)

		s.Require().NoError(err)
		s.Equal([]string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
	})

	s.Run("success: cache hit skips generation", func() {
		b := builder.NewBookingBuilder()
		cached := []string{"09:00", "09:30"}
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)
		s.mockCache.EXPECT().Get(ctx, b.BreederID, b.AppointmentTypeID, monday).Return(cached, true)

		slots, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, monday)

		s.Require().NoError(err)
		s.Equal(cached, slots)
	})

	s.Run("error: unknown breeder", func() {
		breederID := uuid.New()
		notFound := infra.WrapRepoErr("breeder not found", errors.New("no rows"), infra.KindNotFound)
		s.mockSettings.EXPECT().LoadSettings(ctx, breederID).Return(nil, notFound)

		_, err := s.queries.AvailableSlots(ctx, breederID, uuid.New(), monday)

		s.ErrorIs(err, errs.ErrBreederNotFound)
	})

	s.Run("error: booking page disabled", func() {
		b := builder.NewBookingBuilder().WithPageDisabled()
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		_, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, monday)

		s.ErrorIs(err, errs.ErrBookingUnavailable)
	})

	s.Run("error: appointment type disabled", func() {
		b := builder.NewBookingBuilder().WithTypeDisabled()
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		_, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, monday)

		s.ErrorIs(err, errs.ErrBookingUnavailable)
	})

	s.Run("error: unknown appointment type", func() {
		b := builder.NewBookingBuilder()
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		_, err := s.queries.AvailableSlots(ctx, b.BreederID, uuid.New(), monday)

		s.ErrorIs(err, errs.ErrAppointmentTypeNotFound)
	})

	s.Run("error: date beyond the booking window is rejected, not empty", func() {
		b := builder.NewBookingBuilder()
		farOut := monday.AddDate(0, 2, 0)
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		_, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, farOut)

		s.ErrorIs(err, errs.ErrDateOutOfRange)
	})

	s.Run("error: date before the advance-notice cutoff is rejected", func() {
		b := builder.NewBookingBuilder()
		today := time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		_, err := s.queries.AvailableSlots(ctx, b.BreederID, b.AppointmentTypeID, today)

		s.ErrorIs(err, errs.ErrDateOutOfRange)
	})
}

func (s *SlotQueriesTestSuite) TestAvailableDates() {
	ctx := context.Background()

	s.Run("success: window bounds from policy and clock", func() {
		b := builder.NewBookingBuilder()
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		view, err := s.queries.AvailableDates(ctx, b.BreederID)

		s.Require().NoError(err)
		// clock = 2026-02-20 10:00, 24h lead, 30 days out
		s.Equal("2026-02-21", view.MinDate)
		s.Equal("2026-03-22", view.MaxDate)
	})

	s.Run("error: booking page disabled", func() {
		b := builder.NewBookingBuilder().WithPageDisabled()
		s.mockSettings.EXPECT().LoadSettings(ctx, b.BreederID).Return(b.BuildSettings(), nil)

		_, err := s.queries.AvailableDates(ctx, b.BreederID)

		s.ErrorIs(err, errs.ErrBookingUnavailable)
	})
}
