// Package export serialises a layout snapshot for consumption outside
// the process: JSON and YAML for people and tooling, CBOR for compact
// deterministic interchange.
package export

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// SchemaVersion is bumped on incompatible changes to Document.
const SchemaVersion = 1

// Document is the exported form of one layout pass.
type Document struct {
	Version      int          `json:"version" yaml:"version"`
	Resolution   string       `json:"resolution" yaml:"resolution"`
	WeekStart    string       `json:"weekStart" yaml:"weekStart"`
	Window       Window       `json:"window" yaml:"window"`
	Scale        Scale        `json:"scale" yaml:"scale"`
	ContentWidth float64      `json:"contentWidth" yaml:"contentWidth"`
	Height       float64      `json:"height" yaml:"height"`
	Today        *Today       `json:"today,omitempty" yaml:"today,omitempty"`
	Items        []Item       `json:"items" yaml:"items"`
	Grid         []GridLine   `json:"grid" yaml:"grid"`
	Weekends     []Band       `json:"weekends" yaml:"weekends"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
	Header       Header       `json:"header" yaml:"header"`
}

type Window struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Days  int    `json:"days" yaml:"days"`
}

type Scale struct {
	UnitWidth     float64 `json:"unitWidth" yaml:"unitWidth"`
	DayWidth      float64 `json:"dayWidth" yaml:"dayWidth"`
	DaysPerUnit   int     `json:"daysPerUnit" yaml:"daysPerUnit"`
	ViewportWidth float64 `json:"viewportWidth" yaml:"viewportWidth"`
	Collapsed     bool    `json:"collapsed" yaml:"collapsed"`
}

type Today struct {
	Date    string  `json:"date" yaml:"date"`
	X       float64 `json:"x" yaml:"x"`
	Visible bool    `json:"visible" yaml:"visible"`
}

// Item is one row with its bar geometry and display attributes.
type Item struct {
	ID        string  `json:"id" yaml:"id"`
	ProjectID string  `json:"projectId" yaml:"projectId"`
	Kind      string  `json:"kind" yaml:"kind"`
	Name      string  `json:"name" yaml:"name"`
	Status    string  `json:"status" yaml:"status"`
	Milestone bool    `json:"milestone,omitempty" yaml:"milestone,omitempty"`
	Critical  bool    `json:"critical,omitempty" yaml:"critical,omitempty"`
	Y         float64 `json:"y" yaml:"y"`
	X         float64 `json:"x" yaml:"x"`
	Width     float64 `json:"width" yaml:"width"`
	Progress  float64 `json:"progress" yaml:"progress"`
	Color     string  `json:"color" yaml:"color"`
}

type GridLine struct {
	Date  string  `json:"date" yaml:"date"`
	X     float64 `json:"x" yaml:"x"`
	Major bool    `json:"major,omitempty" yaml:"major,omitempty"`
}

type Band struct {
	Date  string  `json:"date" yaml:"date"`
	X     float64 `json:"x" yaml:"x"`
	Width float64 `json:"width" yaml:"width"`
}

type Dependency struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Path string `json:"path" yaml:"path"`
}

type Header struct {
	TwoRows bool         `json:"twoRows" yaml:"twoRows"`
	Top     []HeaderCell `json:"top,omitempty" yaml:"top,omitempty"`
	Bottom  []HeaderCell `json:"bottom" yaml:"bottom"`
}

type HeaderCell struct {
	Start string  `json:"start" yaml:"start"`
	X     float64 `json:"x" yaml:"x"`
	Width float64 `json:"width" yaml:"width"`
	Label string  `json:"label" yaml:"label"`
}

// Build flattens a snapshot and the enriched schedule it was computed from.
func Build(snap timeline.Snapshot, s domain.Schedule, today time.Time) Document {
	doc := Document{
		Version:    SchemaVersion,
		Resolution: string(snap.Scale.Resolution),
		WeekStart:  snap.Scale.WeekStart.String(),
		Window: Window{
			Start: day(snap.Window.Start),
			End:   day(snap.Window.End),
			Days:  snap.Window.Days(),
		},
		Scale: Scale{
			UnitWidth:     snap.Scale.UnitWidth,
			DayWidth:      snap.Scale.DayWidth,
			DaysPerUnit:   snap.Scale.DaysPerUnit,
			ViewportWidth: snap.Scale.ViewportWidth,
			Collapsed:     snap.Scale.Collapsed(),
		},
		ContentWidth: snap.ContentWidth,
		Height:       snap.Rows.Height,
		Items:        make([]Item, 0, len(snap.Items)),
		Grid:         make([]GridLine, 0, len(snap.Grid)),
		Weekends:     make([]Band, 0, len(snap.Weekends)),
		Dependencies: make([]Dependency, 0, len(snap.Dependencies)),
		Header:       Header{TwoRows: snap.Header.TwoRows},
	}
	if !today.IsZero() {
		doc.Today = &Today{Date: day(today), X: snap.TodayX, Visible: snap.TodayVisible}
	}

	attrs := itemAttrs(s)
	for _, it := range snap.Items {
		a := attrs[string(it.Kind)+"/"+it.ID]
		doc.Items = append(doc.Items, Item{
			ID:        it.ID,
			ProjectID: it.ProjectID,
			Kind:      string(it.Kind),
			Name:      a.name,
			Status:    a.status,
			Milestone: it.Milestone,
			Critical:  a.critical,
			Y:         it.Y,
			X:         it.Bar.X,
			Width:     it.Bar.Width,
			Progress:  a.progress,
			Color:     a.color,
		})
	}
	for _, g := range snap.Grid {
		doc.Grid = append(doc.Grid, GridLine{Date: day(g.Date), X: g.X, Major: g.Major})
	}
	for _, b := range snap.Weekends {
		doc.Weekends = append(doc.Weekends, Band{Date: day(b.Date), X: b.X, Width: b.Width})
	}
	for _, d := range snap.Dependencies {
		doc.Dependencies = append(doc.Dependencies, Dependency{From: d.FromID, To: d.ToID, Path: d.SVGPath()})
	}
	doc.Header.Top = cells(snap.Header.Top)
	doc.Header.Bottom = cells(snap.Header.Bottom)
	return doc
}

type attrs struct {
	name     string
	status   string
	critical bool
	progress float64
	color    string
}

// itemAttrs indexes display attributes by kind and id. The first
// occurrence of a duplicated id wins, matching the row index.
func itemAttrs(s domain.Schedule) map[string]attrs {
	out := make(map[string]attrs, s.ItemCount())
	put := func(key string, a attrs) {
		if _, dup := out[key]; !dup {
			out[key] = a
		}
	}
	for _, p := range s.Projects {
		put(string(timeline.KindProject)+"/"+p.ID, attrs{p.Name, string(p.Status), p.Critical, p.ProgressPct(), p.Color})
		for _, t := range p.Tasks {
			put(string(timeline.KindTask)+"/"+t.ID, attrs{t.Name, string(t.Status), t.Critical, t.ProgressPct(), t.Color})
		}
	}
	return out
}

func cells(units []timeline.HeaderUnit) []HeaderCell {
	if len(units) == 0 {
		return nil
	}
	out := make([]HeaderCell, len(units))
	for i, u := range units {
		out[i] = HeaderCell{Start: day(u.Start), X: u.X, Width: u.Width, Label: u.Label}
	}
	return out
}

func day(t time.Time) string { return t.Format(time.DateOnly) }
