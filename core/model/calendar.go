package model

import "time"

// Holiday is a company-wide non-working range. Dates are inclusive calendar
// days and apply to the whole team uniformly.
type Holiday struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// Midnight strips the time-of-day component, normalizing t to a calendar day
// in UTC. All engine comparisons operate on normalized days, never instants.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a normalized calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}
