package timeline

import (
	"math"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Scale is the pixel scale of one layout pass. DayWidth is always
// UnitWidth divided by the days per unit at the window start.
type Scale struct {
	Resolution    domain.Resolution
	UnitWidth     float64
	DayWidth      float64
	DaysPerUnit   int
	ViewportWidth float64
	WeekStart     domain.Weekday
}

// ComputeScale fits the window into the viewport. The unit width never
// drops below the resolution's minimum, so the content may be wider than
// the viewport and must then scroll horizontally.
func ComputeScale(viewportWidth float64, res domain.Resolution, w Window, weekStart domain.Weekday) Scale {
	if viewportWidth < 0 || math.IsNaN(viewportWidth) {
		viewportWidth = 0
	}
	spec := SpecFor(res)
	perUnit := DaysPerUnit(res, w.Start)
	totalDays := w.Days()

	var unitWidth float64
	if totalDays < perUnit {
		unitWidth = viewportWidth
	} else {
		units := math.Ceil(float64(totalDays) / float64(perUnit))
		unitWidth = math.Max(viewportWidth/units, spec.MinUnitWidth)
	}

	return Scale{
		Resolution:    res,
		UnitWidth:     unitWidth,
		DayWidth:      unitWidth / float64(perUnit),
		DaysPerUnit:   perUnit,
		ViewportWidth: viewportWidth,
		WeekStart:     weekStart,
	}
}

// ContentWidth is the rendered width of the whole window.
func (s Scale) ContentWidth(w Window) float64 {
	return float64(w.Days()) * s.DayWidth
}

// Overflows reports whether the content is wider than the viewport.
func (s Scale) Overflows(w Window) bool {
	return s.ContentWidth(w) > s.ViewportWidth
}

// Collapsed reports whether grid lines use the coarser interval.
func (s Scale) Collapsed() bool {
	if s.Resolution == domain.ResolutionDay {
		return false
	}
	return s.DayWidth < SpecFor(s.Resolution).MinDayDensity
}
