package timeline

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Params are the inputs of one layout pass besides the schedule.
type Params struct {
	Resolution    domain.Resolution
	ViewportWidth float64
	WeekStart     domain.Weekday
	Today         time.Time
	Rows          RowMetrics
	Route         RouteMetrics
	Logger        *slog.Logger
}

// DefaultParams returns params with the default row and route metrics.
func DefaultParams(res domain.Resolution, viewportWidth float64, weekStart domain.Weekday, today time.Time) Params {
	return Params{
		Resolution:    res,
		ViewportWidth: viewportWidth,
		WeekStart:     weekStart,
		Today:         today,
		Rows:          DefaultRowMetrics,
		Route:         DefaultRouteMetrics,
	}
}

// ItemKind distinguishes project rows from task rows.
type ItemKind string

const (
	KindProject ItemKind = "project"
	KindTask    ItemKind = "task"
)

// ItemGeometry is the placement of one schedule row.
type ItemGeometry struct {
	ID        string
	ProjectID string
	Kind      ItemKind
	Milestone bool
	Y         float64 // row top
	Bar       Bar
}

// Snapshot is the complete geometry of one layout pass.
type Snapshot struct {
	Window       Window
	Scale        Scale
	Rows         RowIndex
	Items        []ItemGeometry
	Grid         []GridLine
	Weekends     []Band
	Dependencies []DependencyPath
	Header       Header
	TodayX       float64
	TodayVisible bool
	ContentWidth float64
}

// Item returns the geometry for id.
func (s Snapshot) Item(id string) (ItemGeometry, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemGeometry{}, false
}

// Layout runs a full layout pass. It returns false and a zero Snapshot
// when the schedule is empty; nothing should be drawn in that case.
func Layout(s domain.Schedule, p Params) (Snapshot, bool) {
	if !p.Resolution.Valid() {
		panic("timeline: layout with invalid resolution " + string(p.Resolution))
	}
	if !p.WeekStart.Valid() {
		panic("timeline: layout with invalid start of week " + p.WeekStart.String())
	}
	w, ok := WindowFor(s, p.Resolution, p.WeekStart)
	if !ok {
		return Snapshot{}, false
	}

	sc := ComputeScale(p.ViewportWidth, p.Resolution, w, p.WeekStart)
	rows := BuildRowIndex(s, p.Rows)

	items := make([]ItemGeometry, 0, s.ItemCount())
	for _, proj := range s.Projects {
		items = append(items, ItemGeometry{
			ID:        proj.ID,
			ProjectID: proj.ID,
			Kind:      KindProject,
			Milestone: proj.IsMilestone(),
			Y:         rows.Offsets[proj.ID],
			Bar:       BarPosition(proj.Start, proj.End, w.Start, sc.DayWidth),
		})
		for _, t := range proj.Tasks {
			items = append(items, ItemGeometry{
				ID:        t.ID,
				ProjectID: proj.ID,
				Kind:      KindTask,
				Milestone: t.IsMilestone(),
				Y:         rows.Offsets[t.ID],
				Bar:       BarPosition(t.Start, t.End, w.Start, sc.DayWidth),
			})
		}
	}

	snap := Snapshot{
		Window:       w,
		Scale:        sc,
		Rows:         rows,
		Items:        items,
		Grid:         GridLines(p.Resolution, sc.DayWidth, w, p.WeekStart),
		Weekends:     WeekendBands(w, sc.DayWidth),
		Dependencies: RouteDependencies(s, rows, w.Start, sc.DayWidth, p.Route, p.Logger),
		Header:       BuildHeader(sc, w),
		ContentWidth: sc.ContentWidth(w),
	}
	if !p.Today.IsZero() {
		snap.TodayX = TodayX(p.Today, w.Start, sc.DayWidth)
		snap.TodayVisible = w.Contains(p.Today)
	}
	return snap, true
}
