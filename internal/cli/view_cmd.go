package cli

import (
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var flags chartFlags
	var cols int

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Browse the chart interactively",
		Long: `Opens a scrollable chart. Keys: d/w/m/q/y switch the time scale,
s cycles the first day of the week, 1-3 toggle the task list columns,
left/right scroll the timeline, up/down scroll rows, esc quits.

Without a terminal on stdin the chart is printed as with "show".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openFromFlags(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			if !app.interactive() {
				return printChart(cmd, st, cols, cmd.Flags().Changed("width"))
			}
			return app.runProgram(newViewModel(st))
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().IntVar(&cols, "cols", termWidth(), "terminal width when printing without a terminal")

	return cmd
}
