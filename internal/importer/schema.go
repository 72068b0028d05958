package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Document is the top-level structure of a schedule file.
type Document struct {
	Projects []ProjectDoc `json:"projects" yaml:"projects"`
}

// ProjectDoc defines one project and its tasks in the schedule file.
type ProjectDoc struct {
	ID         string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string    `json:"name" yaml:"name"`
	Status     string    `json:"status,omitempty" yaml:"status,omitempty"`
	Type       string    `json:"type,omitempty" yaml:"type,omitempty"`
	StartDate  string    `json:"startDate" yaml:"startDate"`
	EndDate    string    `json:"endDate" yaml:"endDate"`
	Duration   *int      `json:"duration,omitempty" yaml:"duration,omitempty"`
	IsCritical bool      `json:"isCritical,omitempty" yaml:"isCritical,omitempty"`
	Expanded   *bool     `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Progress   *float64  `json:"progress,omitempty" yaml:"progress,omitempty"`
	Tasks      []TaskDoc `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// TaskDoc defines a task row owned by a project.
type TaskDoc struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string   `json:"name" yaml:"name"`
	Status        string   `json:"status,omitempty" yaml:"status,omitempty"`
	Type          string   `json:"type,omitempty" yaml:"type,omitempty"`
	StartDate     string   `json:"startDate" yaml:"startDate"`
	EndDate       string   `json:"endDate" yaml:"endDate"`
	Duration      *int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	IsCritical    bool     `json:"isCritical,omitempty" yaml:"isCritical,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Subcontractor string   `json:"subcontractor,omitempty" yaml:"subcontractor,omitempty"`
	Progress      *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
}

// Format is the encoding of a schedule file.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonc":
		return FormatJSONC, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Parse decodes a schedule document. JSON input may carry comments and
// trailing commas.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON, FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing schedule json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing schedule yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}

// LoadFile reads and parses a schedule file.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}
