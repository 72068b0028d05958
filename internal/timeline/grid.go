package timeline

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// GridLine is one vertical grid line.
type GridLine struct {
	Date  time.Time
	X     float64
	Major bool
}

// Band is a shaded vertical day column.
type Band struct {
	Date  time.Time
	X     float64
	Width float64
}

// GridDates returns the dates that receive a vertical grid line. Day
// resolution always gets one line per day. Other resolutions fall back
// to week or month lines when the day density is below the resolution's
// threshold, and to daily lines otherwise.
func GridDates(res domain.Resolution, dayWidth float64, w Window, weekStart domain.Weekday) []time.Time {
	spec := SpecFor(res)
	if res == domain.ResolutionDay {
		return eachDay(w.Start, w.End)
	}
	if dayWidth < spec.MinDayDensity {
		switch res {
		case domain.ResolutionWeek, domain.ResolutionMonth:
			return eachWeek(w.Start, w.End, weekStart)
		case domain.ResolutionQuarter, domain.ResolutionYear:
			return eachMonth(w.Start, w.End)
		}
	}
	return eachDay(w.Start, w.End)
}

// IsMajor classifies a grid date. Only collapsed intervals have major
// lines: week starts for week and month, first-of-month for quarter and year.
func IsMajor(date time.Time, res domain.Resolution, dayWidth float64, weekStart domain.Weekday) bool {
	if dayWidth >= SpecFor(res).MinDayDensity {
		return false
	}
	switch res {
	case domain.ResolutionWeek, domain.ResolutionMonth:
		return domain.Weekday(date.Weekday()) == weekStart
	case domain.ResolutionQuarter, domain.ResolutionYear:
		return date.Day() == 1
	}
	return false
}

// GridLines returns the classified, positioned grid lines for one pass.
func GridLines(res domain.Resolution, dayWidth float64, w Window, weekStart domain.Weekday) []GridLine {
	dates := GridDates(res, dayWidth, w, weekStart)
	if len(dates) == 0 {
		return nil
	}
	lines := make([]GridLine, len(dates))
	for i, d := range dates {
		lines[i] = GridLine{
			Date:  d,
			X:     XOf(d, w.Start, dayWidth),
			Major: IsMajor(d, res, dayWidth, weekStart),
		}
	}
	return lines
}

// WeekendBands returns one band per Saturday and Sunday in the window.
func WeekendBands(w Window, dayWidth float64) []Band {
	var bands []Band
	for i, d := range eachDay(w.Start, w.End) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			bands = append(bands, Band{Date: d, X: float64(i) * dayWidth, Width: dayWidth})
		}
	}
	return bands
}
