package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/export"
	"github.com/spf13/cobra"
)

func newLayoutCmd(app *App) *cobra.Command {
	var flags chartFlags
	var format, output string

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Compute chart geometry and export it",
		Long: `Lays out a schedule and writes the resulting geometry: window, scale,
bar positions, grid lines, dependency paths and header cells.

Formats are json, yaml and cbor; "table" prints a readable summary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openFromFlags(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			snap, err := snapshotOf(st, args[0])
			if err != nil {
				return err
			}

			if format == "table" {
				return writeOutput(cmd, output, func(w io.Writer) error {
					_, err := fmt.Fprint(w, formatter.FormatGeometry(snap, st.Schedule()))
					return err
				})
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			doc := export.Build(snap, st.Schedule(), st.Today())
			return writeOutput(cmd, output, func(w io.Writer) error {
				return export.Encode(w, doc, f)
			})
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml, cbor or table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
