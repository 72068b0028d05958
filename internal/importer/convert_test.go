package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MinimalDocument(t *testing.T) {
	s, err := Convert(validMinimalDoc())
	require.NoError(t, err)

	require.Len(t, s.Projects, 1)
	p := s.Projects[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, domain.StatusNotStarted, p.Status)
	assert.Equal(t, domain.TypeProject, p.Type)
	assert.True(t, p.Expanded)
	assert.Nil(t, p.Progress)
	assert.Equal(t, 20, p.Duration)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.Local), p.Start)

	require.Len(t, p.Tasks, 1)
	assert.Equal(t, domain.TypeTask, p.Tasks[0].Type)
	assert.Nil(t, p.Tasks[0].Dependencies)
	assert.Equal(t, 5, p.Tasks[0].Duration)
}

func TestConvert_PreservesDeclaredValues(t *testing.T) {
	doc := validMinimalDoc()
	doc.Projects[0].Expanded = ptrBool(false)
	doc.Projects[0].Duration = ptrInt(15)
	doc.Projects[0].Tasks[0].Progress = ptrFloat(40)
	doc.Projects[0].Tasks[0].Dependencies = []string{"x", "y"}

	s, err := Convert(doc)
	require.NoError(t, err)

	p := s.Projects[0]
	assert.False(t, p.Expanded)
	assert.Equal(t, 15, p.Duration)
	assert.Equal(t, 40.0, p.Tasks[0].ProgressPct())
	assert.Equal(t, []string{"x", "y"}, p.Tasks[0].Dependencies)

	*doc.Projects[0].Tasks[0].Progress = 99
	doc.Projects[0].Tasks[0].Dependencies[0] = "z"
	assert.Equal(t, 40.0, p.Tasks[0].ProgressPct(), "schedule does not alias the document")
	assert.Equal(t, "x", p.Tasks[0].Dependencies[0])
}

func TestConvert_GeneratedIDsAreDeterministic(t *testing.T) {
	doc := validMinimalDoc()
	doc.Projects[0].ID = ""
	doc.Projects[0].Tasks[0].ID = ""

	a, err := Convert(doc)
	require.NoError(t, err)
	b, err := Convert(doc)
	require.NoError(t, err)

	assert.Len(t, a.Projects[0].ID, 36)
	assert.Equal(t, a.Projects[0].ID, b.Projects[0].ID)
	assert.Equal(t, a.Projects[0].Tasks[0].ID, b.Projects[0].Tasks[0].ID)
	assert.NotEqual(t, a.Projects[0].ID, a.Projects[0].Tasks[0].ID)
}

func TestConvertIn_Location(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)

	s, err := ConvertIn(validMinimalDoc(), loc)
	require.NoError(t, err)

	assert.Equal(t, loc, s.Projects[0].Start.Location())
	assert.Equal(t, 1, s.Projects[0].Start.Day())
}

func TestConvert_BadDate(t *testing.T) {
	doc := validMinimalDoc()
	doc.Projects[0].Tasks[0].StartDate = "soon"

	_, err := Convert(doc)
	assert.ErrorContains(t, err, "projects[0].tasks[0].startDate")
}

func TestLoad_FromFile(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "site.jsonc"))
	require.NoError(t, err)

	assert.Equal(t, 5, s.ItemCount())
	milestone := s.Projects[1].Tasks[0]
	assert.True(t, milestone.IsMilestone())
	assert.Equal(t, []string{"12"}, milestone.Dependencies)
	assert.NotEmpty(t, s.Projects[1].ID)
}

func TestLoad_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[{"name":"","startDate":"x","endDate":"2024-01-01"}]}`), 0o644))

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.ErrorContains(t, err, "projects[0].name is required")
}
