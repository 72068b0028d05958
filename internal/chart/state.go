// Package chart holds the interactive chart state. A State is an
// immutable value: every transition returns a new State with freshly
// computed geometry and leaves the receiver untouched.
package chart

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// Trigger names the input change that caused a recompute.
type Trigger string

const (
	TriggerLoad       Trigger = "load"
	TriggerResize     Trigger = "resize"
	TriggerResolution Trigger = "resolution"
	TriggerWeekStart  Trigger = "week-start"
	TriggerColumns    Trigger = "columns"
)

// State is a chart snapshot plus the inputs that produced it.
type State struct {
	schedule domain.Schedule
	params   timeline.Params
	columns  []domain.ColumnID
	snapshot timeline.Snapshot
	laidOut  bool

	clock    func() time.Time
	logger   *slog.Logger
	observer Observer
}

// Option configures a new State.
type Option func(*State)

// WithObserver sets the transition observer.
func WithObserver(o Observer) Option {
	return func(s *State) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets the logger handed to enrichment and layout.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) { s.logger = l }
}

// WithClock sets the source of "today" used when params carry none.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithColumns sets the initially visible task list columns. Unknown ids
// are dropped; the name column is always kept.
func WithColumns(ids []domain.ColumnID) Option {
	return func(s *State) {
		s.columns, _ = normaliseColumns(ids)
	}
}

// New returns an empty State. Call Load to lay out a schedule.
func New(p timeline.Params, opts ...Option) State {
	s := State{
		params:   p,
		columns:  allColumns(),
		clock:    time.Now,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.params.Logger = s.logger
	return s
}

func (s State) Schedule() domain.Schedule     { return s.schedule }
func (s State) Resolution() domain.Resolution { return s.params.Resolution }
func (s State) ViewportWidth() float64        { return s.params.ViewportWidth }
func (s State) WeekStart() domain.Weekday     { return s.params.WeekStart }
func (s State) Params() timeline.Params       { return s.params }

// Snapshot returns the current geometry. ok is false when nothing is
// loaded or the schedule is empty.
func (s State) Snapshot() (timeline.Snapshot, bool) { return s.snapshot, s.laidOut }

// VisibleColumns returns the visible columns in display order.
func (s State) VisibleColumns() []domain.ColumnID {
	return append([]domain.ColumnID(nil), s.columns...)
}

// ColumnVisible reports whether id is shown.
func (s State) ColumnVisible(id domain.ColumnID) bool {
	for _, c := range s.columns {
		if c == id {
			return true
		}
	}
	return false
}

// TaskListWidth is the summed width of the visible columns.
func (s State) TaskListWidth() int {
	w := 0
	for _, id := range s.columns {
		if c, ok := domain.LookupColumn(id); ok {
			w += c.Width
		}
	}
	return w
}

// Today returns the date used for progress derivation and the today marker.
func (s State) Today() time.Time {
	if !s.params.Today.IsZero() {
		return s.params.Today
	}
	return timeline.Midnight(s.clock())
}

// Load enriches sched and lays it out.
func (s State) Load(sched domain.Schedule) State {
	next := s
	next.params.Today = s.Today()
	next.schedule = timeline.Enrich(sched, next.params.Today, s.logger)
	return next.Recompute(TriggerLoad)
}

// SetResolution switches the time scale.
func (s State) SetResolution(r domain.Resolution) (State, error) {
	if !r.Valid() {
		return s, s.reject(TriggerResolution, fmt.Errorf("%w: %q", domain.ErrInvalidResolution, r))
	}
	next := s
	next.params.Resolution = r
	return next.Recompute(TriggerResolution), nil
}

// SetViewportWidth refits the chart to a new viewport. Negative widths
// are treated as zero.
func (s State) SetViewportWidth(px float64) State {
	if px < 0 {
		px = 0
	}
	next := s
	next.params.ViewportWidth = px
	return next.Recompute(TriggerResize)
}

// SetStartOfWeek changes which weekday opens a week.
func (s State) SetStartOfWeek(d domain.Weekday) (State, error) {
	if !d.Valid() {
		return s, s.reject(TriggerWeekStart, fmt.Errorf("%w: %d", domain.ErrInvalidWeekStart, int(d)))
	}
	next := s
	next.params.WeekStart = d
	return next.Recompute(TriggerWeekStart), nil
}

// ToggleColumn shows or hides one column. The name column cannot be hidden.
func (s State) ToggleColumn(id domain.ColumnID) (State, error) {
	col, ok := domain.LookupColumn(id)
	if !ok {
		return s, s.reject(TriggerColumns, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, id))
	}
	if col.Always {
		return s, nil
	}
	var ids []domain.ColumnID
	if s.ColumnVisible(id) {
		for _, c := range s.columns {
			if c != id {
				ids = append(ids, c)
			}
		}
	} else {
		ids = append(s.VisibleColumns(), id)
	}
	return s.SetVisibleColumns(ids)
}

// SetVisibleColumns replaces the visible column set.
func (s State) SetVisibleColumns(ids []domain.ColumnID) (State, error) {
	cols, err := normaliseColumns(ids)
	if err != nil {
		return s, s.reject(TriggerColumns, err)
	}
	next := s
	next.columns = cols
	return next.Recompute(TriggerColumns), nil
}

// Recompute refreshes derived geometry for trigger. Column changes do not
// affect the timeline, so the existing snapshot is kept.
func (s State) Recompute(trigger Trigger) State {
	started := time.Now()
	next := s
	if trigger != TriggerColumns {
		next.snapshot, next.laidOut = timeline.Layout(next.schedule, next.params)
	}
	next.observer.ObserveTransition(next.event(trigger, time.Since(started), nil))
	return next
}

func (s State) reject(trigger Trigger, err error) error {
	s.observer.ObserveTransition(s.event(trigger, 0, err))
	return err
}

func (s State) event(trigger Trigger, d time.Duration, err error) Event {
	return Event{
		Trigger:       trigger,
		Resolution:    s.params.Resolution,
		ViewportWidth: s.params.ViewportWidth,
		WeekStart:     s.params.WeekStart,
		Items:         len(s.snapshot.Items),
		ContentWidth:  s.snapshot.ContentWidth,
		Duration:      d,
		Err:           err,
	}
}

func allColumns() []domain.ColumnID {
	ids := make([]domain.ColumnID, len(domain.Columns))
	for i, c := range domain.Columns {
		ids[i] = c.ID
	}
	return ids
}

// normaliseColumns validates ids and returns them in display order with
// the name column always present.
func normaliseColumns(ids []domain.ColumnID) ([]domain.ColumnID, error) {
	want := make(map[domain.ColumnID]bool, len(ids))
	var unknown error
	for _, id := range ids {
		if _, ok := domain.LookupColumn(id); !ok {
			if unknown == nil {
				unknown = fmt.Errorf("%w: %q", domain.ErrUnknownColumn, id)
			}
			continue
		}
		want[id] = true
	}
	var out []domain.ColumnID
	for _, c := range domain.Columns {
		if c.Always || want[c.ID] {
			out = append(out, c.ID)
		}
	}
	return out, unknown
}
