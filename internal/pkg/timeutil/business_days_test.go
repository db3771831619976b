package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		// 2024-01-01 is a Monday
		{"single weekday", date(2024, time.January, 1), date(2024, time.January, 1), 1},
		{"full work week", date(2024, time.January, 1), date(2024, time.January, 5), 5},
		{"week including weekend", date(2024, time.January, 1), date(2024, time.January, 7), 5},
		{"saturday only", date(2024, time.January, 6), date(2024, time.January, 6), 0},
		{"weekend only", date(2024, time.January, 6), date(2024, time.January, 7), 0},
		{"friday through monday", date(2024, time.January, 5), date(2024, time.January, 8), 2},
		{"two full weeks", date(2024, time.January, 1), date(2024, time.January, 14), 10},
		{"end before start", date(2024, time.January, 5), date(2024, time.January, 1), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := BusinessDays(c.start, c.end); got != c.want {
				t.Errorf("BusinessDays(%s, %s) = %d, want %d",
					c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
			}
		})
	}
}

func TestBusinessDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 5, 0, 1, 0, 0, time.UTC)
	if got := BusinessDays(start, end); got != 5 {
		t.Errorf("BusinessDays with times = %d, want 5", got)
	}
}

func TestOverlapBusinessDays(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       int
	}{
		{"full containment", date(2024, time.January, 1), date(2024, time.January, 31),
			date(2024, time.January, 8), date(2024, time.January, 12), 5},
		{"partial overlap", date(2024, time.January, 1), date(2024, time.January, 10),
			date(2024, time.January, 8), date(2024, time.January, 19), 3},
		{"disjoint", date(2024, time.January, 1), date(2024, time.January, 5),
			date(2024, time.January, 8), date(2024, time.January, 12), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := OverlapBusinessDays(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
				t.Errorf("OverlapBusinessDays = %d, want %d", got, c.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(date(2024, time.January, 6)) || !IsWeekend(date(2024, time.January, 7)) {
		t.Error("expected Jan 6/7 2024 to be weekend")
	}
	if IsWeekend(date(2024, time.January, 8)) {
		t.Error("expected Jan 8 2024 (Monday) to be a weekday")
	}
}
