package schedule

import "time"

// Slot is a candidate bookable start time for one appointment type on one
// calendar date.
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateSlots walks one calendar date's availability ranges at the policy's
// stride and returns every start time that fits the appointment type, clears
// the advance-notice cutoff, and does not collide with an existing booking.
//
// The walk is pure: identical inputs yield identical output. The clock is the
// explicit now parameter, never read internally. Ranges are processed in
// configuration order and slots are emitted in that same order; no global
// re-sort happens even when a day's ranges are configured out of
// chronological order.
func GenerateSlots(
	date time.Time,
	appointmentType AppointmentType,
	availability WeeklyAvailability,
	policy BookingPolicy,
	now time.Time,
	existing []BookedInterval,
) []Slot {
	if !policy.BookingPageEnabled() || !appointmentType.Enabled() {
		return nil
	}

	duration := appointmentType.Duration()
	stride := time.Duration(policy.SlotIntervalMinutes()) * time.Minute
	minStart := now.Add(policy.MinAdvance())

	var slots []Slot
	for _, r := range availability.RangesOn(date) {
		cursor := r.StartOn(date)
		rangeEnd := cursor.Add(time.Duration(r.EndMinute()-r.StartMinute()) * time.Minute)

		for !cursor.Add(duration).After(rangeEnd) {
			slotEnd := cursor.Add(duration)
			// Strictly after the cutoff: a slot starting exactly at
			// now+minAdvance is rejected.
			if cursor.After(minStart) &&
				!appointmentType.ConflictsWith(cursor, slotEnd, existing) {
				slots = append(slots, Slot{Start: cursor, End: slotEnd})
			}
			cursor = cursor.Add(stride)
		}
	}
	return slots
}

// AlignedToRange reports whether a chosen start time lands on the generator's
// grid for the date: inside some configured range, offset from the range
// start by a whole number of strides, with the full appointment fitting
// before the range ends. Used to validate submissions before they ever reach
// the conflict check.
func AlignedToRange(
	date time.Time,
	startMinute int,
	appointmentType AppointmentType,
	availability WeeklyAvailability,
	policy BookingPolicy,
) bool {
	endMinute := startMinute + appointmentType.DurationMinutes()
	for _, r := range availability.RangesOn(date) {
		if !r.Contains(startMinute, endMinute) {
			continue
		}
		if (startMinute-r.StartMinute())%policy.SlotIntervalMinutes() == 0 {
			return true
		}
	}
	return false
}
