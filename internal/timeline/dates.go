package timeline

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole number of calendar days from b to a
// (positive when a is later). DST transitions do not affect the count.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ua.Sub(ub).Hours() / 24)
}

// AddDays moves t by n calendar days, keeping it at midnight.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t).AddDate(0, 0, n)
}

// StartOfWeek returns the most recent weekStart day on or before t.
func StartOfWeek(t time.Time, weekStart domain.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return AddDays(t, -diff)
}

// EndOfWeek returns the last day of the week containing t.
func EndOfWeek(t time.Time, weekStart domain.Weekday) time.Time {
	return AddDays(StartOfWeek(t, weekStart), 6)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func StartOfQuarter(t time.Time) time.Time {
	m := ((t.Month()-1)/3)*3 + 1
	return time.Date(t.Year(), m, 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	first := StartOfMonth(t)
	return DaysBetween(first.AddDate(0, 1, 0), first)
}

// DaysInQuarterSpan sums the days of the three months starting at t's month.
// The span is anchored on t's month, not on the calendar quarter.
func DaysInQuarterSpan(t time.Time) int {
	first := StartOfMonth(t)
	return DaysBetween(first.AddDate(0, 3, 0), first)
}

// DaysInYear returns 365 or 366.
func DaysInYear(t time.Time) int {
	first := StartOfYear(t)
	return DaysBetween(first.AddDate(1, 0, 0), first)
}

// eachDay returns every calendar day from start to end inclusive.
func eachDay(start, end time.Time) []time.Time {
	n := DaysBetween(end, start)
	if n < 0 {
		return nil
	}
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, AddDays(start, i))
	}
	return out
}

// eachWeek returns the week starts from the week containing start up to end.
func eachWeek(start, end time.Time, weekStart domain.Weekday) []time.Time {
	if DaysBetween(end, start) < 0 {
		return nil
	}
	var out []time.Time
	for d := StartOfWeek(start, weekStart); DaysBetween(end, d) >= 0; d = AddDays(d, 7) {
		out = append(out, d)
	}
	return out
}

// eachMonth returns the first of every month from start's month up to end.
func eachMonth(start, end time.Time) []time.Time {
	if DaysBetween(end, start) < 0 {
		return nil
	}
	var out []time.Time
	for d := StartOfMonth(start); DaysBetween(end, d) >= 0; d = d.AddDate(0, 1, 0) {
		out = append(out, d)
	}
	return out
}

// eachQuarter returns the first day of every quarter from start's quarter up to end.
func eachQuarter(start, end time.Time) []time.Time {
	if DaysBetween(end, start) < 0 {
		return nil
	}
	var out []time.Time
	for d := StartOfQuarter(start); DaysBetween(end, d) >= 0; d = d.AddDate(0, 3, 0) {
		out = append(out, d)
	}
	return out
}

// eachYear returns January 1 of every year from start's year up to end.
func eachYear(start, end time.Time) []time.Time {
	if DaysBetween(end, start) < 0 {
		return nil
	}
	var out []time.Time
	for d := StartOfYear(start); DaysBetween(end, d) >= 0; d = d.AddDate(1, 0, 0) {
		out = append(out, d)
	}
	return out
}
