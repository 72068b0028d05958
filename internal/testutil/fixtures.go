package testutil

import (
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Date builds a local-midnight calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// MustDate parses YYYY-MM-DD in local time and panics on bad input.
func MustDate(s string) time.Time {
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

// Task options
type TaskOption func(*domain.Task)

func DependsOn(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = append(t.Dependencies, ids...)
	}
}

func WithTaskProgress(pct float64) TaskOption {
	return func(t *domain.Task) {
		t.Progress = &pct
	}
}

func WithTaskStatus(s domain.Status) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func AsMilestone() TaskOption {
	return func(t *domain.Task) {
		t.Type = domain.TypeTaskMilestone
	}
}

func Critical() TaskOption {
	return func(t *domain.Task) {
		t.Critical = true
	}
}

// NewTask builds a plain task spanning start..end (YYYY-MM-DD).
func NewTask(id, name, start, end string, opts ...TaskOption) domain.Task {
	s, e := MustDate(start), MustDate(end)
	t := domain.Task{
		ID:       id,
		Name:     name,
		Status:   domain.StatusNotStarted,
		Type:     domain.TypeTask,
		Start:    s,
		End:      e,
		Duration: spanDays(s, e),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectProgress(pct float64) ProjectOption {
	return func(p *domain.Project) {
		p.Progress = &pct
	}
}

func WithProjectStatus(s domain.Status) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

// NewProject builds an expanded project owning tasks.
func NewProject(id, name, start, end string, tasks []domain.Task, opts ...ProjectOption) domain.Project {
	s, e := MustDate(start), MustDate(end)
	p := domain.Project{
		ID:       id,
		Name:     name,
		Status:   domain.StatusOnTrack,
		Type:     domain.TypeProject,
		Start:    s,
		End:      e,
		Duration: spanDays(s, e),
		Expanded: true,
		Tasks:    tasks,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func spanDays(start, end time.Time) int {
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

// SiteSchedule is a small construction schedule: two projects, five
// tasks, a milestone and a chain of finish-to-start dependencies.
func SiteSchedule() domain.Schedule {
	return domain.Schedule{Projects: []domain.Project{
		NewProject("1", "Site Preparation", "2024-11-01", "2024-11-26", []domain.Task{
			NewTask("11", "Clear vegetation and debris", "2024-11-01", "2024-11-08",
				Critical(), WithTaskStatus(domain.StatusCompleted)),
			NewTask("12", "Grade and level site", "2024-11-09", "2024-11-19",
				Critical(), DependsOn("11"), WithTaskStatus(domain.StatusOnTrack)),
			NewTask("13", "Install temporary fencing", "2024-11-20", "2024-11-22",
				DependsOn("12"), WithTaskStatus(domain.StatusAtRisk)),
		}),
		NewProject("2", "Foundation Work", "2024-11-25", "2024-12-15", []domain.Task{
			NewTask("21", "Excavate foundation", "2024-11-25", "2024-12-05", DependsOn("12")),
			NewTask("22", "Install footings", "2024-12-06", "2024-12-14", DependsOn("21")),
			NewTask("23", "Complete Footings", "2024-12-15", "2024-12-15", DependsOn("22"), AsMilestone()),
		}, WithProjectStatus(domain.StatusAtRisk)),
	}}
}
