package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gantt/internal/config"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/spf13/pflag"
)

// chartFlags are the layout inputs every chart command accepts. Only
// flags set on the command line override the resolved config.
type chartFlags struct {
	resolution string
	weekStart  string
	width      float64
	today      string
	columns    []string
}

func (f *chartFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.resolution, "resolution", "r", "", "time scale: day, week, month, quarter or year")
	fs.StringVar(&f.weekStart, "week-start", "", "first day of the week, 0-6 or a day name")
	fs.Float64VarP(&f.width, "width", "w", 0, "viewport width in pixels")
	fs.StringVar(&f.today, "today", "", "reference date YYYY-MM-DD (default: current date)")
	fs.StringSliceVar(&f.columns, "columns", nil, "task list columns: startDate, endDate, progress")
}

// apply overlays the flags that were set on cfg.
func (f *chartFlags) apply(cfg config.Config, fs *pflag.FlagSet) (config.Config, error) {
	if fs.Changed("resolution") {
		r, err := domain.ParseResolution(f.resolution)
		if err != nil {
			return cfg, err
		}
		cfg.Resolution = r
	}
	if fs.Changed("week-start") {
		d, err := domain.ParseWeekday(f.weekStart)
		if err != nil {
			return cfg, err
		}
		cfg.WeekStart = d
	}
	if fs.Changed("width") {
		if f.width <= 0 {
			return cfg, fmt.Errorf("--width must be positive, got %v", f.width)
		}
		cfg.ViewportWidth = f.width
	}
	if fs.Changed("columns") {
		cfg.Columns = make([]domain.ColumnID, len(f.columns))
		for i, c := range f.columns {
			cfg.Columns[i] = domain.ColumnID(c)
		}
	}
	return cfg, nil
}

// todayDate parses --today. A zero time means "use the clock".
func (f *chartFlags) todayDate() (time.Time, error) {
	if f.today == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, f.today, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q (expected YYYY-MM-DD)", f.today)
	}
	return t, nil
}
