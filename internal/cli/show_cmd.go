package cli

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultTermWidth = 120

func newShowCmd(app *App) *cobra.Command {
	var flags chartFlags
	var cols int

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the chart to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openFromFlags(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			return printChart(cmd, st, cols, cmd.Flags().Changed("width"))
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().IntVar(&cols, "cols", termWidth(), "terminal width in columns")

	return cmd
}

func (app *App) openFromFlags(cmd *cobra.Command, flags *chartFlags, path string) (chart.State, error) {
	cfg, err := flags.apply(app.Config, cmd.Flags())
	if err != nil {
		return chart.State{}, err
	}
	today, err := flags.todayDate()
	if err != nil {
		return chart.State{}, err
	}
	return app.openChart(path, cfg, today)
}

// printChart writes the text chart. Unless the viewport width was given
// explicitly, the chart is refitted to the terminal width.
func printChart(cmd *cobra.Command, st chart.State, cols int, fixedWidth bool) error {
	cells := formatter.TimelineCells(cols, st.VisibleColumns())
	if fixedWidth {
		if snap, ok := st.Snapshot(); ok {
			cells = int(math.Ceil(snap.ContentWidth / formatter.CellPx))
		}
	} else {
		st = st.SetViewportWidth(float64(cells * formatter.CellPx))
	}
	snap, _ := st.Snapshot()
	_, err := fmt.Fprint(cmd.OutOrStdout(), formatter.RenderChart(snap, st.Schedule(), formatter.ChartOptions{
		Width:   cells,
		Columns: st.VisibleColumns(),
	}))
	return err
}

// termWidth reads $COLUMNS, which shells export for interactive sessions.
func termWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return defaultTermWidth
}
