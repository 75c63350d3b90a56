// Package calendar provides work-day arithmetic over inclusive calendar
// ranges. Weekends and holiday ranges are excluded; all dates are compared by
// calendar day, never by instant.
package calendar

import (
	"time"

	"github.com/kilianp07/releasepilot/core/model"
)

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d is covered by any holiday range.
func IsHoliday(d time.Time, holidays []model.Holiday) bool {
	day := model.Midnight(d)
	for _, h := range holidays {
		if !day.Before(model.Midnight(h.Start)) && !day.After(model.Midnight(h.End)) {
			return true
		}
	}
	return false
}

// IsWorkDay reports whether d is a Mon-Fri date not covered by a holiday.
func IsWorkDay(d time.Time, holidays []model.Holiday) bool {
	return !IsWeekend(d) && !IsHoliday(d, holidays)
}

// WorkDays counts work days in [start, end] inclusive. Holidays spanning
// weekends contribute no reduction beyond what weekends already remove.
func WorkDays(start, end time.Time, holidays []model.Holiday) int {
	s, e := model.Midnight(start), model.Midnight(end)
	if e.Before(s) {
		return 0
	}
	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if IsWorkDay(d, holidays) {
			count++
		}
	}
	return count
}

// PTOWorkDays counts the member-days in [start, end] that are work days and
// covered by a PTO entry. Each entry is counted independently, so two members
// off on the same date remove two days. A PTO day on a weekend or holiday
// contributes nothing.
func PTOWorkDays(start, end time.Time, holidays []model.Holiday, entries []model.PTOEntry) int {
	s, e := model.Midnight(start), model.Midnight(end)
	if e.Before(s) {
		return 0
	}
	count := 0
	for _, entry := range entries {
		from, to := model.Midnight(entry.Start), model.Midnight(entry.End)
		if from.Before(s) {
			from = s
		}
		if to.After(e) {
			to = e
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if IsWorkDay(d, holidays) {
				count++
			}
		}
	}
	return count
}

// NextWorkDay returns d when it is a work day, otherwise the first work day
// after it.
func NextWorkDay(d time.Time, holidays []model.Holiday) time.Time {
	day := model.Midnight(d)
	for !IsWorkDay(day, holidays) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// AddWorkDays returns the date on which the n-th work day is consumed,
// counting start itself when it is a work day. n <= 1 collapses to the first
// work day at or after start.
func AddWorkDays(start time.Time, n int, holidays []model.Holiday) time.Time {
	day := NextWorkDay(start, holidays)
	for i := 1; i < n; i++ {
		day = NextWorkDay(day.AddDate(0, 0, 1), holidays)
	}
	return day
}
