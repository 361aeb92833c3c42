package schedule

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var (
	ErrInvalidTimeRange   = errors.New("time range start must be before end")
	ErrTimeRangeOutOfDay  = errors.New("time range must fall within a single day")
	ErrInvalidDayOfWeek   = errors.New("invalid day of week")
	ErrInvalidDuration    = errors.New("appointment duration must be positive")
	ErrNegativeBuffer     = errors.New("buffers cannot be negative")
	ErrInvalidSlotStride  = errors.New("slot interval must be positive")
	ErrInvalidAdvanceRule = errors.New("advance-booking bounds cannot be negative")
)

// TimeRange is a minute-of-day interval within one calendar day, half-open.
type TimeRange struct {
	startMinute int
	endMinute   int
}

// Misconfigured ranges (start >= end) are rejected here so they fail at
// configuration-load time instead of silently producing no slots.
func NewTimeRange(startMinute, endMinute int) (TimeRange, error) {
	if startMinute < 0 || endMinute > minutesPerDay {
		return TimeRange{}, ErrTimeRangeOutOfDay
	}
	if startMinute >= endMinute {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{startMinute: startMinute, endMinute: endMinute}, nil
}

func (r TimeRange) StartMinute() int { return r.startMinute }
func (r TimeRange) EndMinute() int   { return r.endMinute }

// Contains reports whether the minute-of-day interval [start, end) lies
// entirely inside the range.
func (r TimeRange) Contains(startMinute, endMinute int) bool {
	return startMinute >= r.startMinute && endMinute <= r.endMinute
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		r.startMinute/60, r.startMinute%60, r.endMinute/60, r.endMinute%60)
}

// StartOn anchors the range's start minute onto a calendar date.
func (r TimeRange) StartOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(r.startMinute) * time.Minute)
}

// WeeklyAvailability holds a breeder's recurring weekly time ranges, indexed
// by DayOfWeek. Per-day ranges keep configuration order; overlapping ranges
// are treated as independent ranges rather than merged.
type WeeklyAvailability struct {
	days [DaysPerWeek][]TimeRange
}

func NewWeeklyAvailability(days map[DayOfWeek][]TimeRange) (WeeklyAvailability, error) {
	var w WeeklyAvailability
	for day, ranges := range days {
		if !day.IsValid() {
			return WeeklyAvailability{}, ErrInvalidDayOfWeek
		}
		w.days[day] = append([]TimeRange(nil), ranges...)
	}
	return w, nil
}

// RangesOn returns the ranges configured for the date's weekday, in
// configuration order. A day with nothing configured yields an empty list.
func (w WeeklyAvailability) RangesOn(date time.Time) []TimeRange {
	return w.days[DayOfWeekOf(date)]
}

func (w WeeklyAvailability) RangesFor(day DayOfWeek) []TimeRange {
	if !day.IsValid() {
		return nil
	}
	return w.days[day]
}
