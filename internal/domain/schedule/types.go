package schedule

import "time"

// DayOfWeek indexes weekly availability with Monday as day 0, matching the
// order breeders configure their week in.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DaysPerWeek = 7

var dayNames = [DaysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return "invalid"
	}
	return dayNames[d]
}

func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// DayOfWeekOf converts time.Weekday (Sunday=0) to the Monday-based index.
func DayOfWeekOf(t time.Time) DayOfWeek {
	return DayOfWeek((int(t.Weekday()) + 6) % 7)
}
