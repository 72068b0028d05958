package domain

import "time"

// Schedule is the ordered list of projects laid out top to bottom.
type Schedule struct {
	Projects []Project
}

// ItemCount returns the number of projects plus tasks.
func (s Schedule) ItemCount() int {
	n := len(s.Projects)
	for _, p := range s.Projects {
		n += len(p.Tasks)
	}
	return n
}

// Bounds returns the earliest start and latest end across every project
// and task. ok is false when the schedule has no items.
func (s Schedule) Bounds() (earliest, latest time.Time, ok bool) {
	visit := func(start, end time.Time) {
		if !ok || start.Before(earliest) {
			earliest = start
		}
		if !ok || end.After(latest) {
			latest = end
		}
		ok = true
	}
	for _, p := range s.Projects {
		visit(p.Start, p.End)
		for _, t := range p.Tasks {
			visit(t.Start, t.End)
		}
	}
	return earliest, latest, ok
}

// Clone returns a deep copy so derived schedules never share slices or
// progress pointers with their source.
func (s Schedule) Clone() Schedule {
	out := Schedule{Projects: make([]Project, len(s.Projects))}
	for i, p := range s.Projects {
		cp := p
		cp.Progress = clonePtr(p.Progress)
		cp.Tasks = make([]Task, len(p.Tasks))
		for j, t := range p.Tasks {
			ct := t
			ct.Progress = clonePtr(t.Progress)
			if t.Dependencies != nil {
				ct.Dependencies = append([]string(nil), t.Dependencies...)
			}
			cp.Tasks[j] = ct
		}
		out.Projects[i] = cp
	}
	return out
}

// TaskRef locates a task by project and task index.
type TaskRef struct {
	Project int
	Task    int
}

// TaskIndex maps every task ID to its position. Later duplicates do not
// override the first occurrence.
func (s Schedule) TaskIndex() map[string]TaskRef {
	idx := make(map[string]TaskRef)
	for pi, p := range s.Projects {
		for ti, t := range p.Tasks {
			if _, exists := idx[t.ID]; !exists {
				idx[t.ID] = TaskRef{Project: pi, Task: ti}
			}
		}
	}
	return idx
}

// Task returns the task at ref.
func (s Schedule) Task(ref TaskRef) *Task {
	return &s.Projects[ref.Project].Tasks[ref.Task]
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
