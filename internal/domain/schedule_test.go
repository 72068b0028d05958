package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBounds_Empty(t *testing.T) {
	_, _, ok := Schedule{}.Bounds()
	assert.False(t, ok)
}

func TestBounds_IncludesTasks(t *testing.T) {
	s := Schedule{Projects: []Project{
		{ID: "1", Start: day(2024, 11, 1), End: day(2024, 11, 26), Tasks: []Task{
			{ID: "11", Start: day(2024, 10, 28), End: day(2024, 11, 8)},
			{ID: "12", Start: day(2024, 11, 9), End: day(2024, 12, 3)},
		}},
		{ID: "2", Start: day(2024, 11, 20), End: day(2024, 11, 30)},
	}}

	earliest, latest, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, day(2024, 10, 28), earliest)
	assert.Equal(t, day(2024, 12, 3), latest)
}

func TestClone_DoesNotShareState(t *testing.T) {
	pct := 40.0
	s := Schedule{Projects: []Project{{ID: "1", Progress: &pct, Tasks: []Task{
		{ID: "11", Dependencies: []string{"10"}, Progress: &pct},
	}}}}

	c := s.Clone()
	*c.Projects[0].Progress = 90
	c.Projects[0].Tasks[0].Dependencies[0] = "x"
	c.Projects[0].Tasks[0].Name = "changed"

	assert.Equal(t, 40.0, *s.Projects[0].Progress)
	assert.Equal(t, "10", s.Projects[0].Tasks[0].Dependencies[0])
	assert.Empty(t, s.Projects[0].Tasks[0].Name)
}

func TestTaskIndex_FirstOccurrenceWins(t *testing.T) {
	s := Schedule{Projects: []Project{
		{ID: "1", Tasks: []Task{{ID: "a"}, {ID: "b"}}},
		{ID: "2", Tasks: []Task{{ID: "a"}}},
	}}
	idx := s.TaskIndex()
	assert.Equal(t, TaskRef{Project: 0, Task: 0}, idx["a"])
	assert.Equal(t, TaskRef{Project: 0, Task: 1}, idx["b"])
	assert.Equal(t, "b", s.Task(idx["b"]).ID)
}

func TestParseResolution(t *testing.T) {
	for _, r := range Resolutions {
		got, err := ParseResolution(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	got, err := ParseResolution(" Quarter ")
	require.NoError(t, err)
	assert.Equal(t, ResolutionQuarter, got)

	_, err = ParseResolution("fortnight")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResolution)
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]Weekday{"0": Sunday, "1": Monday, "6": Saturday, "monday": Monday, "Sat": Saturday}
	for in, want := range cases {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"7", "-1", "someday"} {
		_, err := ParseWeekday(bad)
		assert.ErrorIs(t, err, ErrInvalidWeekStart, bad)
	}
}

func TestItemType_IsMilestone(t *testing.T) {
	assert.True(t, TypePrimeMilestone.IsMilestone())
	assert.True(t, TypeTaskMilestone.IsMilestone())
	assert.False(t, TypeTask.IsMilestone())
	assert.False(t, TypeProject.IsMilestone())
}

func TestLookupColumn(t *testing.T) {
	c, ok := LookupColumn(ColumnName)
	require.True(t, ok)
	assert.True(t, c.Always)
	_, ok = LookupColumn("owner")
	assert.False(t, ok)
}
