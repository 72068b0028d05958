package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/google/uuid"
)

// idNamespace seeds the deterministic ids of items that have none, so the
// same file always yields the same ids.
var idNamespace = uuid.MustParse("6f1f3f0c-1b9e-4f0e-9d8a-5a4c2b7e3d10")

// Convert transforms a validated Document into a schedule. Dates are
// interpreted as local calendar days. Input order is preserved.
// Call Validate first; Convert assumes the document is valid.
func Convert(doc *Document) (domain.Schedule, error) {
	return ConvertIn(doc, time.Local)
}

// ConvertIn is Convert with an explicit location for calendar dates.
func ConvertIn(doc *Document, loc *time.Location) (domain.Schedule, error) {
	s := domain.Schedule{Projects: make([]domain.Project, 0, len(doc.Projects))}

	for i, pd := range doc.Projects {
		start, err := parseDate(pd.StartDate, loc)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("projects[%d].startDate: %w", i, err)
		}
		end, err := parseDate(pd.EndDate, loc)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("projects[%d].endDate: %w", i, err)
		}

		projectID := pd.ID
		if projectID == "" {
			projectID = generatedID(fmt.Sprintf("project/%d", i))
		}

		project := domain.Project{
			ID:       projectID,
			Name:     pd.Name,
			Status:   domain.Status(domain.CoalesceStr(pd.Status, string(domain.StatusNotStarted))),
			Type:     domain.ItemType(domain.CoalesceStr(pd.Type, string(domain.TypeProject))),
			Start:    start,
			End:      end,
			Duration: durationOr(pd.Duration, start, end),
			Critical: pd.IsCritical,
			Expanded: pd.Expanded == nil || *pd.Expanded,
			Progress: clonePtr(pd.Progress),
			Tasks:    make([]domain.Task, 0, len(pd.Tasks)),
		}

		for j, td := range pd.Tasks {
			tstart, err := parseDate(td.StartDate, loc)
			if err != nil {
				return domain.Schedule{}, fmt.Errorf("projects[%d].tasks[%d].startDate: %w", i, j, err)
			}
			tend, err := parseDate(td.EndDate, loc)
			if err != nil {
				return domain.Schedule{}, fmt.Errorf("projects[%d].tasks[%d].endDate: %w", i, j, err)
			}

			taskID := td.ID
			if taskID == "" {
				taskID = generatedID(fmt.Sprintf("project/%d/task/%d", i, j))
			}

			var deps []string
			if len(td.Dependencies) > 0 {
				deps = append(deps, td.Dependencies...)
			}

			project.Tasks = append(project.Tasks, domain.Task{
				ID:            taskID,
				Name:          td.Name,
				Status:        domain.Status(domain.CoalesceStr(td.Status, string(domain.StatusNotStarted))),
				Type:          domain.ItemType(domain.CoalesceStr(td.Type, string(domain.TypeTask))),
				Start:         tstart,
				End:           tend,
				Duration:      durationOr(td.Duration, tstart, tend),
				Critical:      td.IsCritical,
				Dependencies:  deps,
				Subcontractor: td.Subcontractor,
				Progress:      clonePtr(td.Progress),
			})
		}
		s.Projects = append(s.Projects, project)
	}

	return s, nil
}

// Load reads, validates and converts a schedule file in one step.
func Load(path string) (domain.Schedule, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return domain.Schedule{}, err
	}
	if errs := Validate(doc); len(errs) > 0 {
		return domain.Schedule{}, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, errors.Join(errs...))
	}
	return Convert(doc)
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

func generatedID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

// durationOr returns the declared duration, or the inclusive day count.
func durationOr(declared *int, start, end time.Time) int {
	if declared != nil {
		return *declared
	}
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
