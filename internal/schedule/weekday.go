package schedule

import "time"

// Weekday is the day-of-week enum used by opening hours entries.
type Weekday string

const (
	Sunday    Weekday = "SUNDAY"
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

// Number maps a weekday to its calendar index, Sunday = 0 .. Saturday = 6.
// Unknown values map to -1 so they never match a real calendar day.
func (w Weekday) Number() int {
	switch w {
	case Sunday:
		return 0
	case Monday:
		return 1
	case Tuesday:
		return 2
	case Wednesday:
		return 3
	case Thursday:
		return 4
	case Friday:
		return 5
	case Saturday:
		return 6
	default:
		return -1
	}
}

// IsValid reports whether w is one of the seven known weekdays.
func (w Weekday) IsValid() bool {
	return w.Number() >= 0
}

// WeekdayFromTime returns the weekday of t in t's own location.
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Sunday:
		return Sunday
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return Saturday
	}
}
