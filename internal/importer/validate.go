package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Validate checks the document for errors before conversion.
// Returns a slice of all validation errors found. An end date before the
// start date is not an error; enrichment corrects it.
func Validate(doc *Document) []error {
	var errs []error

	ids := make(map[string]string)
	claim := func(field, id string) {
		if id == "" {
			return
		}
		if prev, dup := ids[id]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used by %s)", field, id, prev))
			return
		}
		ids[id] = field
	}

	for i, p := range doc.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		claim(prefix, p.ID)
		errs = append(errs, validateProject(prefix, &p)...)

		for j, t := range p.Tasks {
			tprefix := fmt.Sprintf("%s.tasks[%d]", prefix, j)
			claim(tprefix, t.ID)
			errs = append(errs, validateTask(tprefix, &t)...)
		}
	}

	return errs
}

func validateProject(prefix string, p *ProjectDoc) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if p.Status != "" && !domain.ValidStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
	}
	if p.Type != "" && !domain.ValidProjectTypes[p.Type] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, p.Type))
	}
	errs = append(errs, validateRequiredDate(prefix+".startDate", p.StartDate)...)
	errs = append(errs, validateRequiredDate(prefix+".endDate", p.EndDate)...)
	errs = append(errs, validateProgress(prefix+".progress", p.Progress)...)
	errs = append(errs, validateDuration(prefix+".duration", p.Duration)...)

	return errs
}

func validateTask(prefix string, t *TaskDoc) []error {
	var errs []error

	if t.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if t.Status != "" && !domain.ValidStatuses[t.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
	}
	if t.Type != "" && !domain.ValidTaskTypes[t.Type] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, t.Type))
	}
	errs = append(errs, validateRequiredDate(prefix+".startDate", t.StartDate)...)
	errs = append(errs, validateRequiredDate(prefix+".endDate", t.EndDate)...)
	errs = append(errs, validateProgress(prefix+".progress", t.Progress)...)
	errs = append(errs, validateDuration(prefix+".duration", t.Duration)...)

	for k, dep := range t.Dependencies {
		if dep == "" {
			errs = append(errs, fmt.Errorf("%s.dependencies[%d]: empty id", prefix, k))
		}
	}

	return errs
}

func validateRequiredDate(field, s string) []error {
	if s == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)}
	}
	return nil
}

func validateProgress(field string, v *float64) []error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 100 {
		return []error{fmt.Errorf("%s: %v out of range (expected 0-100)", field, *v)}
	}
	return nil
}

func validateDuration(field string, v *int) []error {
	if v != nil && *v < 0 {
		return []error{fmt.Errorf("%s must not be negative", field)}
	}
	return nil
}
