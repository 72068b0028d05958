package timeline

import "github.com/alexanderramin/gantt/internal/domain"

// RowMetrics are the fixed row heights of the chart body.
type RowMetrics struct {
	ProjectHeight float64
	TaskHeight    float64
}

// DefaultRowMetrics matches the task list pane row heights.
var DefaultRowMetrics = RowMetrics{ProjectHeight: 48, TaskHeight: 36}

// RowIndex maps item IDs to the top of their row.
type RowIndex struct {
	Offsets map[string]float64
	Order   []string
	Tops    []float64 // parallel to Order
	Height  float64
}

// BuildRowIndex walks the schedule once, top to bottom. A project row is
// followed by its task rows; the cursor is never reset between projects.
func BuildRowIndex(s domain.Schedule, m RowMetrics) RowIndex {
	idx := RowIndex{
		Offsets: make(map[string]float64, s.ItemCount()),
		Order:   make([]string, 0, s.ItemCount()),
		Tops:    make([]float64, 0, s.ItemCount()),
	}
	cursor := 0.0
	record := func(id string) {
		if _, dup := idx.Offsets[id]; !dup {
			idx.Offsets[id] = cursor
		}
		idx.Order = append(idx.Order, id)
		idx.Tops = append(idx.Tops, cursor)
	}
	for _, p := range s.Projects {
		record(p.ID)
		cursor += m.ProjectHeight
		for _, t := range p.Tasks {
			record(t.ID)
			cursor += m.TaskHeight
		}
	}
	idx.Height = cursor
	return idx
}

// Y returns the row top for id.
func (r RowIndex) Y(id string) (float64, bool) {
	y, ok := r.Offsets[id]
	return y, ok
}

// RowLines returns the y of every row top in traversal order, used for
// horizontal separators.
func (r RowIndex) RowLines() []float64 {
	return append([]float64(nil), r.Tops...)
}
