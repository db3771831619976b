package timeutil

import "time"

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BusinessDays counts the calendar days in [start, end] inclusive,
// excluding Saturdays and Sundays. Public holidays are not considered.
// Returns 0 when end is before start.
func BusinessDays(start, end time.Time) int {
	start = DateOnly(start)
	end = DateOnly(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		days++
	}
	return days
}

// OverlapBusinessDays counts the business days in the intersection of
// [aStart, aEnd] and [bStart, bEnd]. Returns 0 when the ranges are disjoint.
func OverlapBusinessDays(aStart, aEnd, bStart, bEnd time.Time) int {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	return BusinessDays(start, end)
}
