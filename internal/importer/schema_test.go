package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_JSONCAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadFile(filepath.Join("testdata", "site.jsonc"))
	require.NoError(t, err)
	fromYAML, err := LoadFile(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)

	require.Len(t, fromJSON.Projects, 2)
	p := fromJSON.Projects[0]
	assert.Equal(t, "Site Preparation", p.Name)
	require.NotNil(t, p.Duration)
	assert.Equal(t, 22, *p.Duration)
	require.Len(t, p.Tasks, 2)
	assert.Equal(t, []string{"11"}, p.Tasks[1].Dependencies)
	require.NotNil(t, fromJSON.Projects[1].Tasks[0].Progress)
	assert.Equal(t, 0.0, *fromJSON.Projects[1].Tasks[0].Progress)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"plan.json", FormatJSON},
		{"plan.JSONC", FormatJSONC},
		{"dir/plan.yaml", FormatYAML},
		{"plan.yml", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatFromPath("plan.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`{"projects": [`), FormatJSON)
	assert.ErrorContains(t, err, "parsing schedule json")

	_, err = Parse([]byte(`projects: "unterminated`), FormatYAML)
	assert.ErrorContains(t, err, "parsing schedule yaml")

	_, err = Parse([]byte(`{}`), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
