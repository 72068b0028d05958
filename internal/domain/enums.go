package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusOnTrack    Status = "on-track"
	StatusAtRisk     Status = "at-risk"
	StatusDelayed    Status = "delayed"
	StatusCompleted  Status = "completed"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"not-started": true, "on-track": true, "at-risk": true,
	"delayed": true, "completed": true,
}

type ItemType string

const (
	TypeProject        ItemType = "project"
	TypePrimeMilestone ItemType = "prime-milestone"
	TypeTask           ItemType = "task"
	TypeTaskMilestone  ItemType = "task-milestone"
)

// IsMilestone reports whether the item renders as a single-point marker.
func (t ItemType) IsMilestone() bool {
	return t == TypePrimeMilestone || t == TypeTaskMilestone
}

// ValidProjectTypes and ValidTaskTypes list the accepted type strings per level.
var (
	ValidProjectTypes = map[string]bool{"project": true, "prime-milestone": true}
	ValidTaskTypes    = map[string]bool{"task": true, "task-milestone": true}
)

// Resolution is the active time-scale granularity of the chart.
type Resolution string

const (
	ResolutionDay     Resolution = "day"
	ResolutionWeek    Resolution = "week"
	ResolutionMonth   Resolution = "month"
	ResolutionQuarter Resolution = "quarter"
	ResolutionYear    Resolution = "year"
)

// Resolutions lists every resolution from finest to coarsest.
var Resolutions = []Resolution{
	ResolutionDay, ResolutionWeek, ResolutionMonth, ResolutionQuarter, ResolutionYear,
}

func (r Resolution) Valid() bool {
	switch r {
	case ResolutionDay, ResolutionWeek, ResolutionMonth, ResolutionQuarter, ResolutionYear:
		return true
	}
	return false
}

// ParseResolution converts a case-insensitive name into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	r := Resolution(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q (expected day, week, month, quarter or year)", ErrInvalidResolution, s)
	}
	return r, nil
}

// Weekday is a start-of-week index, 0=Sunday through 6=Saturday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func (d Weekday) Valid() bool { return d >= Sunday && d <= Saturday }

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	name := weekdayNames[d]
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseWeekday accepts an index ("0".."6") or a full or three-letter day name.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		d := Weekday(n)
		if !d.Valid() {
			return 0, fmt.Errorf("%w: %d (expected 0-6)", ErrInvalidWeekStart, n)
		}
		return d, nil
	}
	for i, name := range weekdayNames {
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekStart, s)
}

// ColumnID identifies a column of the task list pane.
type ColumnID string

const (
	ColumnName      ColumnID = "name"
	ColumnStartDate ColumnID = "startDate"
	ColumnEndDate   ColumnID = "endDate"
	ColumnProgress  ColumnID = "progress"
)

// Column describes one task list column.
type Column struct {
	ID     ColumnID
	Label  string
	Width  int
	Always bool
}

// Columns is the ordered task list layout. Name is always visible.
var Columns = []Column{
	{ID: ColumnName, Label: "Name", Width: 200, Always: true},
	{ID: ColumnStartDate, Label: "Start Date", Width: 80},
	{ID: ColumnEndDate, Label: "End Date", Width: 80},
	{ID: ColumnProgress, Label: "Progress", Width: 60},
}

// LookupColumn returns the column definition for id.
func LookupColumn(id ColumnID) (Column, bool) {
	for _, c := range Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}
