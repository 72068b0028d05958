package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// HeaderUnit is one labelled cell of the time-scale header.
type HeaderUnit struct {
	Start time.Time
	X     float64
	Width float64
	Label string
}

// Header is the one- or two-row time-scale header above the grid.
// Week, quarter and year show a coarser context row on top.
type Header struct {
	TwoRows bool
	Top     []HeaderUnit
	Bottom  []HeaderUnit
}

// BuildHeader lays out the header cells for a scale and window.
func BuildHeader(sc Scale, w Window) Header {
	h := Header{}
	res := sc.Resolution
	cell := func(d time.Time, width float64, label string) HeaderUnit {
		return HeaderUnit{Start: d, X: XOf(d, w.Start, sc.DayWidth), Width: width, Label: label}
	}
	monthWidth := func(d time.Time) float64 { return float64(DaysInMonth(d)) * sc.DayWidth }

	// Quarter and year headers always cover whole calendar years.
	yearStart := StartOfYear(w.Start)
	yearEnd := time.Date(w.End.Year(), time.December, 31, 0, 0, 0, 0, w.End.Location())

	switch res {
	case domain.ResolutionDay:
		for _, d := range eachDay(w.Start, w.End) {
			h.Bottom = append(h.Bottom, cell(d, sc.UnitWidth, d.Format("2")))
		}
	case domain.ResolutionWeek:
		h.TwoRows = true
		for _, d := range eachWeek(w.Start, w.End, sc.WeekStart) {
			label := fmt.Sprintf("%s–%s", d.Format("2"), EndOfWeek(d, sc.WeekStart).Format("2"))
			h.Bottom = append(h.Bottom, cell(d, sc.UnitWidth, label))
		}
		for _, d := range eachMonth(w.Start, w.End) {
			h.Top = append(h.Top, cell(d, monthWidth(d), d.Format("Jan 2006")))
		}
	case domain.ResolutionMonth:
		for _, d := range eachMonth(w.Start, w.End) {
			h.Bottom = append(h.Bottom, cell(d, monthWidth(d), d.Format("January 2006")))
		}
	case domain.ResolutionQuarter:
		h.TwoRows = true
		for _, d := range eachMonth(yearStart, yearEnd) {
			h.Bottom = append(h.Bottom, cell(d, monthWidth(d), d.Format("Jan")))
		}
		for _, d := range eachQuarter(yearStart, yearEnd) {
			q := (int(d.Month())-1)/3 + 1
			width := float64(DaysInQuarterSpan(d)) * sc.DayWidth
			h.Top = append(h.Top, cell(d, width, fmt.Sprintf("Q%d %d", q, d.Year())))
		}
	case domain.ResolutionYear:
		h.TwoRows = true
		for _, d := range eachMonth(yearStart, yearEnd) {
			h.Bottom = append(h.Bottom, cell(d, monthWidth(d), d.Format("Jan")))
		}
		for _, d := range eachYear(yearStart, yearEnd) {
			width := float64(DaysInYear(d)) * sc.DayWidth
			h.Top = append(h.Top, cell(d, width, d.Format("2006")))
		}
	default:
		panic(fmt.Sprintf("timeline: unknown resolution %q", res))
	}
	return h
}
