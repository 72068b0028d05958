package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Window is the calendar range laid out on the chart.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive number of calendar days in the window.
func (w Window) Days() int {
	return DaysBetween(w.End, w.Start) + 1
}

// Contains reports whether t falls on a day inside the window.
func (w Window) Contains(t time.Time) bool {
	return DaysBetween(t, w.Start) >= 0 && DaysBetween(w.End, t) >= 0
}

// ChartStart aligns the earliest item date backwards to a boundary of res.
func ChartStart(earliest time.Time, res domain.Resolution, weekStart domain.Weekday) time.Time {
	switch res {
	case domain.ResolutionDay:
		return AddDays(earliest, -1)
	case domain.ResolutionWeek:
		return StartOfWeek(earliest, weekStart)
	case domain.ResolutionMonth:
		return StartOfMonth(earliest)
	case domain.ResolutionQuarter:
		return StartOfQuarter(earliest)
	case domain.ResolutionYear:
		return StartOfYear(earliest)
	}
	panic(fmt.Sprintf("timeline: unknown resolution %q", res))
}

// ChartEnd extends the latest item date by one trailing margin of res.
func ChartEnd(latest time.Time, res domain.Resolution) time.Time {
	latest = Midnight(latest)
	switch res {
	case domain.ResolutionDay:
		return latest.AddDate(0, 0, 7)
	case domain.ResolutionWeek, domain.ResolutionMonth:
		return latest.AddDate(0, 1, 0)
	case domain.ResolutionQuarter:
		return latest.AddDate(0, 3, 0)
	case domain.ResolutionYear:
		return latest.AddDate(1, 0, 0)
	}
	panic(fmt.Sprintf("timeline: unknown resolution %q", res))
}

// ResolveWindow derives the chart window from the item date bounds.
func ResolveWindow(earliest, latest time.Time, res domain.Resolution, weekStart domain.Weekday) Window {
	return Window{
		Start: ChartStart(earliest, res, weekStart),
		End:   ChartEnd(latest, res),
	}
}

// WindowFor resolves the window of a schedule. ok is false for an empty
// schedule, in which case no layout should be drawn.
func WindowFor(s domain.Schedule, res domain.Resolution, weekStart domain.Weekday) (Window, bool) {
	earliest, latest, ok := s.Bounds()
	if !ok {
		return Window{}, false
	}
	return ResolveWindow(earliest, latest, res, weekStart), true
}
