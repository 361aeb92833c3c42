package schedule

import "time"

// BookedInterval is an existing non-cancelled booking's occupied time, as
// stored. Buffers are applied at check time, not at creation time.
type BookedInterval struct {
	Start time.Time
	End   time.Time
}

// ConflictsWith reports whether the candidate interval [slotStart, slotEnd)
// overlaps any existing booking once buffered.
//
// The buffers applied are those of the candidate appointment type, not the
// type the existing booking was made under. That matches the behavior the
// booking page has always had; symmetric buffering is an open product
// question (see DESIGN.md), so it must not be quietly changed here.
func (t AppointmentType) ConflictsWith(slotStart, slotEnd time.Time, existing []BookedInterval) bool {
	before := time.Duration(t.bufferBefore) * time.Minute
	after := time.Duration(t.bufferAfter) * time.Minute

	for _, b := range existing {
		bufferedStart := b.Start.Add(-before)
		bufferedEnd := b.End.Add(after)
		if slotStart.Before(bufferedEnd) && slotEnd.After(bufferedStart) {
			return true
		}
	}
	return false
}
