package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// ResolutionSpec holds the calibrated constants for one resolution.
type ResolutionSpec struct {
	// MinUnitWidth is the narrowest a resolution unit may render, in px.
	MinUnitWidth float64
	// MinDayDensity is the px-per-day threshold below which grid lines
	// collapse to a coarser interval. Zero means never collapse.
	MinDayDensity float64
	// Format is the Go layout used for unit labels.
	Format string
}

var resolutionSpecs = map[domain.Resolution]ResolutionSpec{
	domain.ResolutionDay:     {MinUnitWidth: 40, Format: "2"},
	domain.ResolutionWeek:    {MinUnitWidth: 175, MinDayDensity: 20, Format: "Jan 2"},
	domain.ResolutionMonth:   {MinUnitWidth: 280, MinDayDensity: 30, Format: "January 2006"},
	domain.ResolutionQuarter: {MinUnitWidth: 455, MinDayDensity: 30, Format: "Jan 2006"},
	domain.ResolutionYear:    {MinUnitWidth: 455, MinDayDensity: 30, Format: "2006"},
}

// SpecFor returns the constants for res. An unknown resolution is a
// programming error and panics.
func SpecFor(res domain.Resolution) ResolutionSpec {
	spec, ok := resolutionSpecs[res]
	if !ok {
		panic(fmt.Sprintf("timeline: unknown resolution %q", res))
	}
	return spec
}

// DaysPerUnit returns how many calendar days one resolution unit spans
// when anchored at anchor.
func DaysPerUnit(res domain.Resolution, anchor time.Time) int {
	switch res {
	case domain.ResolutionDay:
		return 1
	case domain.ResolutionWeek:
		return 7
	case domain.ResolutionMonth:
		return DaysInMonth(anchor)
	case domain.ResolutionQuarter:
		return DaysInQuarterSpan(anchor)
	case domain.ResolutionYear:
		return DaysInYear(anchor)
	}
	panic(fmt.Sprintf("timeline: unknown resolution %q", res))
}
