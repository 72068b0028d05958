// Package config resolves chart settings from defaults, an optional YAML
// file and GANTT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a chart.
type Config struct {
	Resolution    domain.Resolution
	WeekStart     domain.Weekday
	ViewportWidth float64
	Rows          timeline.RowMetrics
	ArrowOffset   float64
	TaskPaneWidth float64
	HeaderHeight  float64
	LogLevel      slog.Level
	Columns       []domain.ColumnID
}

// DefaultConfig returns the built-in chart settings.
func DefaultConfig() Config {
	cols := make([]domain.ColumnID, len(domain.Columns))
	for i, c := range domain.Columns {
		cols[i] = c.ID
	}
	return Config{
		Resolution:    domain.ResolutionWeek,
		WeekStart:     domain.Sunday,
		ViewportWidth: 1200,
		Rows:          timeline.DefaultRowMetrics,
		ArrowOffset:   timeline.DefaultRouteMetrics.ArrowOffset,
		TaskPaneWidth: 420,
		HeaderHeight:  44,
		LogLevel:      slog.LevelInfo,
		Columns:       cols,
	}
}

// fileConfig mirrors Config with the spellings accepted in YAML. Absent
// keys leave the current value untouched.
type fileConfig struct {
	Resolution    *string  `yaml:"resolution"`
	WeekStart     *string  `yaml:"weekStart"`
	ViewportWidth *float64 `yaml:"viewportWidth"`
	Rows          *struct {
		Project *float64 `yaml:"project"`
		Task    *float64 `yaml:"task"`
	} `yaml:"rows"`
	ArrowOffset   *float64 `yaml:"arrowOffset"`
	TaskPaneWidth *float64 `yaml:"taskPaneWidth"`
	HeaderHeight  *float64 `yaml:"headerHeight"`
	LogLevel      *string  `yaml:"logLevel"`
	Columns       []string `yaml:"columns"`
}

// Load builds the effective configuration. An empty path falls back to
// GANTT_CONFIG; when neither is set only defaults and environment apply.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("GANTT_CONFIG")
	}
	if path != "" {
		var err error
		if cfg, err = LoadFile(cfg, path); err != nil {
			return cfg, err
		}
	}
	cfg = ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path on cfg. Values present in the
// file must parse; a bad value is an error rather than silently ignored.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var errs []error
	if fc.Resolution != nil {
		r, err := domain.ParseResolution(*fc.Resolution)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolution: %w", err))
		} else {
			cfg.Resolution = r
		}
	}
	if fc.WeekStart != nil {
		d, err := domain.ParseWeekday(*fc.WeekStart)
		if err != nil {
			errs = append(errs, fmt.Errorf("weekStart: %w", err))
		} else {
			cfg.WeekStart = d
		}
	}
	if fc.LogLevel != nil {
		if err := cfg.LogLevel.UnmarshalText([]byte(*fc.LogLevel)); err != nil {
			errs = append(errs, fmt.Errorf("logLevel: %w", err))
		}
	}
	if fc.Columns != nil {
		cfg.Columns = make([]domain.ColumnID, len(fc.Columns))
		for i, c := range fc.Columns {
			cfg.Columns[i] = domain.ColumnID(c)
		}
	}
	setFloat(&cfg.ViewportWidth, fc.ViewportWidth)
	setFloat(&cfg.ArrowOffset, fc.ArrowOffset)
	setFloat(&cfg.TaskPaneWidth, fc.TaskPaneWidth)
	setFloat(&cfg.HeaderHeight, fc.HeaderHeight)
	if fc.Rows != nil {
		setFloat(&cfg.Rows.ProjectHeight, fc.Rows.Project)
		setFloat(&cfg.Rows.TaskHeight, fc.Rows.Task)
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("config %s: %w", path, errors.Join(errs...))
	}
	return cfg, nil
}

// ApplyEnv overlays GANTT_* environment variables on cfg. Unparsable
// values are ignored.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("GANTT_RESOLUTION"); v != "" {
		if r, err := domain.ParseResolution(v); err == nil {
			cfg.Resolution = r
		}
	}
	if v := os.Getenv("GANTT_WEEK_START"); v != "" {
		if d, err := domain.ParseWeekday(v); err == nil {
			cfg.WeekStart = d
		}
	}
	if v := os.Getenv("GANTT_VIEWPORT_WIDTH"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.ViewportWidth = n
		}
	}
	if v := os.Getenv("GANTT_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}

// Validate reports every problem with cfg at once.
func (c Config) Validate() error {
	var errs []error

	if !c.Resolution.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrInvalidResolution, c.Resolution))
	}
	if !c.WeekStart.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", domain.ErrInvalidWeekStart, int(c.WeekStart)))
	}
	if c.ViewportWidth <= 0 {
		errs = append(errs, fmt.Errorf("viewportWidth must be positive, got %v", c.ViewportWidth))
	}
	if c.Rows.ProjectHeight <= 0 || c.Rows.TaskHeight <= 0 {
		errs = append(errs, fmt.Errorf("row heights must be positive, got project=%v task=%v", c.Rows.ProjectHeight, c.Rows.TaskHeight))
	}
	if c.ArrowOffset < 0 {
		errs = append(errs, fmt.Errorf("arrowOffset must not be negative, got %v", c.ArrowOffset))
	}
	if c.TaskPaneWidth < 0 || c.HeaderHeight < 0 {
		errs = append(errs, fmt.Errorf("pane dimensions must not be negative"))
	}
	for _, id := range c.Columns {
		if _, ok := domain.LookupColumn(id); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, id))
		}
	}

	return errors.Join(errs...)
}

// LayoutParams turns the configuration into layout inputs for today.
func (c Config) LayoutParams(today time.Time) timeline.Params {
	return timeline.Params{
		Resolution:    c.Resolution,
		ViewportWidth: c.ViewportWidth,
		WeekStart:     c.WeekStart,
		Today:         today,
		Rows:          c.Rows,
		Route: timeline.RouteMetrics{
			ArrowOffset:    c.ArrowOffset,
			HalfTaskHeight: c.Rows.TaskHeight / 2,
		},
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
