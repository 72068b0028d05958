package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/config"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/importer"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/spf13/cobra"
)

// ErrEmptySchedule is returned when a command needs geometry but the
// schedule has no items to place.
var ErrEmptySchedule = errors.New("schedule has no items")

// openChart loads a schedule file and lays it out with cfg.
func (app *App) openChart(path string, cfg config.Config, today time.Time) (chart.State, error) {
	sched, err := importer.Load(path)
	if err != nil {
		return chart.State{}, err
	}
	logger := app.logger()
	reportDependencyProblems(logger, sched)

	st := chart.New(cfg.LayoutParams(today),
		chart.WithLogger(logger),
		chart.WithObserver(chart.NewLogObserver(logger)),
		chart.WithClock(app.now),
	)
	st, err = st.SetVisibleColumns(cfg.Columns)
	if err != nil {
		return chart.State{}, err
	}
	return st.Load(sched), nil
}

func (app *App) logger() *slog.Logger {
	if app.Logger != nil {
		return app.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// snapshotOf returns the laid-out geometry or ErrEmptySchedule.
func snapshotOf(st chart.State, path string) (timeline.Snapshot, error) {
	snap, ok := st.Snapshot()
	if !ok {
		return timeline.Snapshot{}, fmt.Errorf("%s: %w", path, ErrEmptySchedule)
	}
	return snap, nil
}

// reportDependencyProblems warns about edges the router will not draw
// sensibly. Neither problem stops the layout.
func reportDependencyProblems(logger *slog.Logger, sched domain.Schedule) {
	for _, cycle := range timeline.DetectCycles(sched) {
		logger.Warn("dependency cycle", "tasks", strings.Join(cycle, " -> "))
	}
	for _, edge := range timeline.DanglingDependencies(sched) {
		logger.Warn("unknown dependency", "edge", edge)
	}
}

// writeOutput sends write's output to path, or to the command's stdout
// when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
