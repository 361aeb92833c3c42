//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"kennelbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

func newID() uuid.UUID {
	return uuid.New()
}

func mustType(t *testing.T, duration, before, after int, enabled bool) schedule.AppointmentType {
	t.Helper()
	typ, err := schedule.NewAppointmentType(uuid.New(), "kennel visit", duration, before, after, enabled)
	require.NoError(t, err)
	return typ
}

func mustAvailability(t *testing.T, days map[schedule.DayOfWeek][]schedule.TimeRange) schedule.WeeklyAvailability {
	t.Helper()
	w, err := schedule.NewWeeklyAvailability(days)
	require.NoError(t, err)
	return w
}

func mustRange(t *testing.T, start, end int) schedule.TimeRange {
	t.Helper()
	r, err := schedule.NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func mustPolicy(t *testing.T, minAdvanceHours, maxAdvanceDays, interval int, enabled bool) schedule.BookingPolicy {
	t.Helper()
	p, err := schedule.NewBookingPolicy(minAdvanceHours, maxAdvanceDays, interval, enabled)
	require.NoError(t, err)
	return p
}

func starts(slots []schedule.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format("15:04")
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	nineToNoon := mustAvailability(t, map[schedule.DayOfWeek][]schedule.TimeRange{
		schedule.Monday: {mustRange(t, 9*60, 12*60)},
	})
	openPolicy := mustPolicy(t, 0, 30, 30, true)
	dayBefore := monday.Add(-24 * time.Hour)

	t.Run("full morning with no bookings", func(t *testing.T) {
		typ := mustType(t, 30, 0, 0, true)

		slots := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, nil)

		// 11:30-12:00 fits exactly; a 12:00 start would end at 12:30.
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, starts(slots))
	})

	t.Run("existing booking blocked with candidate buffers", func(t *testing.T) {
		typ := mustType(t, 30, 15, 15, true)
		booked := []schedule.BookedInterval{{
			Start: monday.Add(10 * time.Hour),
			End:   monday.Add(10*time.Hour + 30*time.Minute),
		}}

		slots := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, booked)

		// Buffered blocked interval is 09:45-10:45, so the 09:30 slot
		// (ending 10:00) collides too.
		assert.Equal(t, []string{"09:00", "11:00", "11:30"}, starts(slots))
	})

	t.Run("slots touching the buffered block edges survive", func(t *testing.T) {
		typ := mustType(t, 30, 30, 30, true)
		booked := []schedule.BookedInterval{{
			Start: monday.Add(10 * time.Hour),
			End:   monday.Add(10*time.Hour + 30*time.Minute),
		}}

		slots := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, booked)

		// The buffered block is 09:30-11:00; candidate intervals stay raw,
		// so slots ending at 09:30 or starting at 11:00 are still offered.
		assert.Equal(t, []string{"09:00", "11:00", "11:30"}, starts(slots))
	})

	t.Run("advance-notice cutoff is strict", func(t *testing.T) {
		typ := mustType(t, 30, 0, 0, true)
		policy := mustPolicy(t, 24, 30, 30, true)

		// now + 24h == 10:00 Monday: the 10:00 slot is exactly at the
		// cutoff and must be excluded; 10:30 is in.
		now := monday.AddDate(0, 0, -1).Add(10 * time.Hour)
		slots := schedule.GenerateSlots(monday, typ, nineToNoon, policy, now, nil)

		assert.Equal(t, []string{"10:30", "11:00", "11:30"}, starts(slots))
	})

	t.Run("day without configured ranges yields nothing", func(t *testing.T) {
		typ := mustType(t, 30, 0, 0, true)
		tuesday := monday.AddDate(0, 0, 1)

		slots := schedule.GenerateSlots(tuesday, typ, nineToNoon, openPolicy, dayBefore, nil)

		assert.Empty(t, slots)
	})

	t.Run("disabled appointment type yields nothing", func(t *testing.T) {
		typ := mustType(t, 30, 0, 0, false)

		slots := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, nil)

		assert.Empty(t, slots)
	})

	t.Run("disabled booking page yields nothing", func(t *testing.T) {
		typ := mustType(t, 30, 0, 0, true)
		closed := mustPolicy(t, 0, 30, 30, false)

		slots := schedule.GenerateSlots(monday, typ, nineToNoon, closed, dayBefore, nil)

		assert.Empty(t, slots)
	})

	t.Run("identical inputs produce identical output", func(t *testing.T) {
		typ := mustType(t, 45, 10, 5, true)
		booked := []schedule.BookedInterval{{
			Start: monday.Add(9*time.Hour + 45*time.Minute),
			End:   monday.Add(10*time.Hour + 30*time.Minute),
		}}

		first := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, booked)
		second := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, booked)

		assert.Equal(t, first, second)
	})

	t.Run("ranges are walked in configuration order", func(t *testing.T) {
		typ := mustType(t, 30, 0, 0, true)
		outOfOrder := mustAvailability(t, map[schedule.DayOfWeek][]schedule.TimeRange{
			schedule.Monday: {
				mustRange(t, 14*60, 15*60),
				mustRange(t, 9*60, 10*60),
			},
		})

		slots := schedule.GenerateSlots(monday, typ, outOfOrder, openPolicy, dayBefore, nil)

		// Configuration order wins over wall-clock order.
		assert.Equal(t, []string{"14:00", "14:30", "09:00", "09:30"}, starts(slots))
	})

	t.Run("every slot lies within a configured range", func(t *testing.T) {
		typ := mustType(t, 50, 0, 0, true)
		avail := mustAvailability(t, map[schedule.DayOfWeek][]schedule.TimeRange{
			schedule.Monday: {mustRange(t, 9*60, 11*60), mustRange(t, 13*60, 13*60+55)},
		})

		slots := schedule.GenerateSlots(monday, typ, avail, openPolicy, dayBefore, nil)

		require.NotEmpty(t, slots)
		for _, s := range slots {
			startMin := s.Start.Hour()*60 + s.Start.Minute()
			endMin := startMin + typ.DurationMinutes()
			contained := false
			for _, r := range avail.RangesFor(schedule.Monday) {
				if r.Contains(startMin, endMin) {
					contained = true
				}
			}
			assert.True(t, contained, "slot %s escapes configured ranges", s.Start.Format("15:04"))
		}
	})

	t.Run("offered slots never overlap a buffered booking", func(t *testing.T) {
		typ := mustType(t, 30, 15, 15, true)
		booked := []schedule.BookedInterval{
			{Start: monday.Add(9*time.Hour + 30*time.Minute), End: monday.Add(10 * time.Hour)},
			{Start: monday.Add(11 * time.Hour), End: monday.Add(11*time.Hour + 30*time.Minute)},
		}

		slots := schedule.GenerateSlots(monday, typ, nineToNoon, openPolicy, dayBefore, booked)

		for _, s := range slots {
			assert.False(t, typ.ConflictsWith(s.Start, s.End, booked),
				"slot %s conflicts after buffering", s.Start.Format("15:04"))
		}
	})
}

func TestAlignedToRange(t *testing.T) {
	avail := mustAvailability(t, map[schedule.DayOfWeek][]schedule.TimeRange{
		schedule.Monday: {mustRange(t, 9*60, 12*60)},
	})
	typ := mustType(t, 30, 0, 0, true)
	policy := mustPolicy(t, 0, 30, 30, true)

	cases := []struct {
		name        string
		startMinute int
		want        bool
	}{
		{"on the grid", 9 * 60, true},
		{"last fitting slot", 11*60 + 30, true},
		{"off-stride start", 9*60 + 10, false},
		{"overruns the range", 11*60 + 45, false},
		{"outside any range", 8 * 60, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := schedule.AlignedToRange(monday, c.startMinute, typ, avail, policy)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestBookingWindow(t *testing.T) {
	policy := mustPolicy(t, 24, 7, 30, true)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

	window := policy.WindowFrom(now)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local), window.MinDate)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), window.MaxDate)

	assert.True(t, window.Contains(time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)))
	assert.True(t, window.Contains(time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)))
	assert.False(t, window.Contains(time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)))
	// Eight days out is past the window.
	assert.False(t, window.Contains(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)))
}
