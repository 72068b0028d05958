// Package render draws a layout snapshot as SVG or PNG. Both outputs are
// produced from the same scene, so their geometry is identical.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/palette"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// Options control chart decoration. Geometry comes from the snapshot.
type Options struct {
	HeaderHeight     float64
	ProjectBarHeight float64
	TaskBarHeight    float64
	CornerRadius     float64
	// Columns selects the task list pane columns. Empty renders the
	// timeline alone.
	Columns    []domain.ColumnID
	FontFamily string
	FontSize   float64
}

// DefaultOptions matches the interactive chart.
func DefaultOptions() Options {
	return Options{
		HeaderHeight:     44,
		ProjectBarHeight: 32,
		TaskBarHeight:    24,
		CornerRadius:     6,
		FontFamily:       "Inter, system-ui, sans-serif",
		FontSize:         12,
	}
}

const (
	colorBackground = "#FFFFFF"
	colorHeader     = "#F8FAFC"
	colorWeekend    = "#F1F5F9"
	colorGridMajor  = "#CBD5E1"
	colorGridMinor  = "#E2E8F0"
	colorRowLine    = "#E2E8F0"
	colorText       = "#334155"
	colorMuted      = "#64748B"
	colorDependency = "#64748B"
	colorCritical   = "#FCA5A5"
	colorTodayBand  = "#60A5FA70"
	colorTodayLine  = "#FFFFFF"
	colorFallback   = "#94A3B8"
)

type rect struct {
	X, Y, W, H  float64
	R           float64
	Fill        string
	Opacity     float64
	Stroke      string
	StrokeWidth float64
	Gradient    string // status name; SVG fills with the matching gradient
}

type line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
	Dash           []float64
}

type polygon struct {
	Points      []timeline.Point
	Fill        string
	Opacity     float64
	Stroke      string
	StrokeWidth float64
}

// connector is an open polyline ending in an arrowhead.
type connector struct {
	Points []timeline.Point
	Stroke string
	Width  float64
}

type text struct {
	X, Y   float64
	Value  string
	Size   float64
	Fill   string
	Anchor string // start, middle, end
	Bold   bool
}

type scene struct {
	Width, Height float64
	Shapes        []any
}

func (s *scene) add(shapes ...any) { s.Shapes = append(s.Shapes, shapes...) }

// row pairs a laid-out item with the schedule item it came from. Layout
// emits items in schedule traversal order, so the two line up by index.
type row struct {
	geo      timeline.ItemGeometry
	name     string
	status   domain.Status
	start    time.Time
	end      time.Time
	critical bool
	progress float64
	color    string
}

func rowsOf(snap timeline.Snapshot, s domain.Schedule) []row {
	var out []row
	i := 0
	next := func() (timeline.ItemGeometry, bool) {
		if i >= len(snap.Items) {
			return timeline.ItemGeometry{}, false
		}
		g := snap.Items[i]
		i++
		return g, true
	}
	for pi, p := range s.Projects {
		g, ok := next()
		if !ok {
			return out
		}
		out = append(out, row{g, p.Name, p.Status, p.Start, p.End, p.Critical, p.ProgressPct(),
			colorOr(p.Color, palette.ProjectColor(pi))})
		for ti, t := range p.Tasks {
			g, ok := next()
			if !ok {
				return out
			}
			out = append(out, row{g, t.Name, t.Status, t.Start, t.End, t.Critical, t.ProgressPct(),
				colorOr(t.Color, palette.TaskColor(pi, ti))})
		}
	}
	return out
}

func colorOr(c, fallback string) string {
	if c != "" {
		return c
	}
	if fallback != "" {
		return fallback
	}
	return colorFallback
}

func paneWidth(cols []domain.ColumnID) float64 {
	w := 0
	for _, id := range cols {
		if c, ok := domain.LookupColumn(id); ok {
			w += c.Width
		}
	}
	return float64(w)
}

func buildScene(snap timeline.Snapshot, s domain.Schedule, opts Options) scene {
	pane := paneWidth(opts.Columns)
	content := snap.ContentWidth
	bodyH := snap.Rows.Height
	top := opts.HeaderHeight

	sc := scene{Width: pane + content, Height: top + bodyH}
	sc.add(rect{W: sc.Width, H: sc.Height, Fill: colorBackground})

	rows := rowsOf(snap, s)
	addHeader(&sc, snap, pane, opts)
	addBody(&sc, snap, pane, top)
	addBars(&sc, rows, snap, pane, top, opts)
	addDependencies(&sc, snap, pane, top)
	if snap.TodayVisible {
		dw := snap.Scale.DayWidth
		x := pane + snap.TodayX
		sc.add(
			rect{X: x - math.Max(dw-4, 1)/2, Y: top, W: math.Max(dw-4, 1), H: bodyH, Fill: colorTodayBand},
			line{X1: x, Y1: top, X2: x, Y2: top + bodyH, Stroke: colorTodayLine, Width: 3, Dash: []float64{4, 4}},
		)
	}
	if pane > 0 {
		addTaskList(&sc, rows, snap, pane, opts)
	}
	return sc
}

func addHeader(sc *scene, snap timeline.Snapshot, pane float64, opts Options) {
	content := snap.ContentWidth
	h := opts.HeaderHeight
	sc.add(rect{X: pane, W: content, H: h, Fill: colorHeader})

	cellRow := func(units []timeline.HeaderUnit, y, rowH float64, bold bool) {
		for _, u := range units {
			x0 := math.Max(u.X, 0)
			x1 := math.Min(u.X+u.Width, content)
			if x1 <= x0 {
				continue
			}
			sc.add(line{X1: pane + x0, Y1: y, X2: pane + x0, Y2: y + rowH, Stroke: colorGridMinor, Width: 1})
			sc.add(text{
				X: pane + (x0+x1)/2, Y: y + rowH/2 + opts.FontSize/3,
				Value: u.Label, Size: opts.FontSize - 1, Fill: colorText, Anchor: "middle", Bold: bold,
			})
		}
	}
	if snap.Header.TwoRows {
		cellRow(snap.Header.Top, 0, h/2, true)
		sc.add(line{X1: pane, Y1: h / 2, X2: pane + content, Y2: h / 2, Stroke: colorGridMinor, Width: 1})
		cellRow(snap.Header.Bottom, h/2, h/2, false)
	} else {
		cellRow(snap.Header.Bottom, 0, h, true)
	}
	sc.add(line{X1: 0, Y1: h, X2: pane + content, Y2: h, Stroke: colorGridMajor, Width: 1})
}

func addBody(sc *scene, snap timeline.Snapshot, pane, top float64) {
	content := snap.ContentWidth
	bottom := top + snap.Rows.Height

	for _, b := range snap.Weekends {
		sc.add(rect{X: pane + b.X, Y: top, W: b.Width, H: snap.Rows.Height, Fill: colorWeekend})
	}
	for _, g := range snap.Grid {
		if g.X < 0 || g.X > content {
			continue
		}
		l := line{X1: pane + g.X, Y1: top, X2: pane + g.X, Y2: bottom, Stroke: colorGridMinor, Width: 1}
		if g.Major {
			l.Stroke, l.Width = colorGridMajor, 1.5
		}
		sc.add(l)
	}
	for _, y := range snap.Rows.RowLines() {
		sc.add(line{X1: 0, Y1: top + y, X2: pane + content, Y2: top + y, Stroke: colorRowLine, Width: 1})
	}
	sc.add(line{X1: 0, Y1: bottom, X2: pane + content, Y2: bottom, Stroke: colorRowLine, Width: 1})
}

func addBars(sc *scene, rows []row, snap timeline.Snapshot, pane, top float64, opts Options) {
	metrics := rowMetrics(snap)
	for _, r := range rows {
		rowH, barH := metrics.TaskHeight, opts.TaskBarHeight
		if r.geo.Kind == timeline.KindProject {
			rowH, barH = metrics.ProjectHeight, opts.ProjectBarHeight
		}
		x := pane + r.geo.Bar.X
		y := top + r.geo.Y + (rowH-barH)/2

		if r.geo.Milestone {
			half := barH / 2
			d := polygon{
				Points: []timeline.Point{{X: x, Y: y + half}, {X: x + half, Y: y}, {X: x + barH, Y: y + half}, {X: x + half, Y: y + barH}},
				Fill:   r.color, Opacity: 0.9,
			}
			if r.critical {
				d.Stroke, d.StrokeWidth = colorCritical, 2
			}
			sc.add(d)
			continue
		}

		w := r.geo.Bar.Width
		sc.add(rect{X: x, Y: y, W: w, H: barH, R: opts.CornerRadius, Fill: r.color, Opacity: 0.5})
		if p := w * r.progress / 100; p > 0 {
			sc.add(rect{X: x, Y: y, W: p, H: barH, R: opts.CornerRadius, Fill: r.color, Opacity: 0.9})
		}
		if r.critical {
			sc.add(rect{X: x - 2, Y: y - 2, W: w + 4, H: barH + 4, R: opts.CornerRadius + 2, Stroke: colorCritical, StrokeWidth: 2})
		}
	}
}

func addDependencies(sc *scene, snap timeline.Snapshot, pane, top float64) {
	for _, d := range snap.Dependencies {
		pts := make([]timeline.Point, len(d.Points))
		for i, p := range d.Points {
			pts[i] = timeline.Point{X: pane + p.X, Y: top + p.Y}
		}
		sc.add(connector{Points: pts, Stroke: colorDependency, Width: 1.5})
	}
}

func addTaskList(sc *scene, rows []row, snap timeline.Snapshot, pane float64, opts Options) {
	h := opts.HeaderHeight
	metrics := rowMetrics(snap)
	sc.add(rect{W: pane, H: h, Fill: colorHeader})

	x := 0.0
	for _, id := range opts.Columns {
		col, ok := domain.LookupColumn(id)
		if !ok {
			continue
		}
		sc.add(text{X: x + 8, Y: h/2 + opts.FontSize/3, Value: col.Label, Size: opts.FontSize, Fill: colorMuted, Bold: true})

		for _, r := range rows {
			rowH := metrics.TaskHeight
			if r.geo.Kind == timeline.KindProject {
				rowH = metrics.ProjectHeight
			}
			cy := h + r.geo.Y + rowH/2
			switch id {
			case domain.ColumnName:
				indent := 24.0
				if r.geo.Kind == timeline.KindProject {
					indent = 8
				}
				sc.add(rect{X: x + indent, Y: cy - 4, W: 8, H: 8, R: 4, Fill: palette.StatusGradient(r.status).From, Gradient: string(r.status)})
				sc.add(text{X: x + indent + 14, Y: cy + opts.FontSize/3, Value: r.name, Size: opts.FontSize,
					Fill: colorText, Bold: r.geo.Kind == timeline.KindProject})
			case domain.ColumnStartDate:
				sc.add(text{X: x + 8, Y: cy + opts.FontSize/3, Value: r.start.Format("Jan 2"), Size: opts.FontSize, Fill: colorMuted})
			case domain.ColumnEndDate:
				sc.add(text{X: x + 8, Y: cy + opts.FontSize/3, Value: r.end.Format("Jan 2"), Size: opts.FontSize, Fill: colorMuted})
			case domain.ColumnProgress:
				sc.add(rect{X: x + 8, Y: cy - 9, W: float64(col.Width) - 16, H: 18, R: 9, Fill: r.color})
				sc.add(text{X: x + float64(col.Width)/2, Y: cy + opts.FontSize/3, Value: fmt.Sprintf("%.0f%%", r.progress),
					Size: opts.FontSize - 1, Fill: palette.ContrastColor(r.color), Anchor: "middle"})
			}
		}
		x += float64(col.Width)
	}
	sc.add(line{X1: pane, Y1: 0, X2: pane, Y2: sc.Height, Stroke: colorGridMajor, Width: 1})
}

// rowMetrics recovers row heights from the row index so rendering never
// disagrees with layout.
func rowMetrics(snap timeline.Snapshot) timeline.RowMetrics {
	m := timeline.DefaultRowMetrics
	tops := snap.Rows.Tops
	for i, it := range snap.Items {
		if i >= len(tops) {
			break
		}
		next := snap.Rows.Height
		if i+1 < len(tops) {
			next = tops[i+1]
		}
		if it.Kind == timeline.KindProject {
			m.ProjectHeight = next - tops[i]
		} else {
			m.TaskHeight = next - tops[i]
		}
	}
	return m
}
