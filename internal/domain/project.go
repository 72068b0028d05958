package domain

import "time"

// Task is a schedule row owned by a Project.
type Task struct {
	ID            string
	Name          string
	Status        Status
	Type          ItemType
	Start         time.Time
	End           time.Time
	Duration      int // days, informational
	Critical      bool
	Dependencies  []string // predecessor task IDs (finish-to-start)
	Subcontractor string
	Progress      *float64 // nil until derived by enrichment
	Color         string
}

// Project owns an ordered sequence of Tasks.
type Project struct {
	ID         string
	Name       string
	Status     Status
	Type       ItemType
	Start      time.Time
	End        time.Time
	Duration   int
	Critical   bool
	Expanded   bool
	Progress   *float64
	ColorGroup string
	Color      string
	Tasks      []Task
}

// ProgressPct returns the progress value or 0 when it has not been derived.
func (t *Task) ProgressPct() float64 { return Float64FromPtrWithDefault(0, t.Progress) }

// ProgressPct returns the progress value or 0 when it has not been derived.
func (p *Project) ProgressPct() float64 { return Float64FromPtrWithDefault(0, p.Progress) }

// IsMilestone reports whether the task renders as a milestone marker.
func (t *Task) IsMilestone() bool { return t.Type.IsMilestone() }

// IsMilestone reports whether the project renders as a milestone marker.
func (p *Project) IsMilestone() bool { return p.Type.IsMilestone() }
