package timeline

import "time"

// Bar is the horizontal extent of a schedule item.
type Bar struct {
	X     float64
	Width float64
}

// End returns the right edge of the bar.
func (b Bar) End() float64 { return b.X + b.Width }

// XOf maps a date to its offset from the chart start. Dates before the
// start map to negative offsets; callers decide visibility.
func XOf(date, start time.Time, dayWidth float64) float64 {
	return float64(DaysBetween(date, start)) * dayWidth
}

// BarPosition places an inclusive date range. The bar begins one day
// width after the raw offset and spans N day widths for N calendar days.
func BarPosition(itemStart, itemEnd, start time.Time, dayWidth float64) Bar {
	return Bar{
		X:     float64(DaysBetween(itemStart, start)+1) * dayWidth,
		Width: float64(DaysBetween(itemEnd, itemStart)+1) * dayWidth,
	}
}

// TodayX centres the today marker inside today's day column.
func TodayX(today, start time.Time, dayWidth float64) float64 {
	return XOf(today, start, dayWidth) + dayWidth/2
}
