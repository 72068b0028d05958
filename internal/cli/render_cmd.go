package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/gantt/internal/render"
	"github.com/spf13/cobra"
)

// ErrUnknownImageFormat is returned for a --format other than svg or png.
var ErrUnknownImageFormat = errors.New("unknown image format")

func newRenderCmd(app *App) *cobra.Command {
	var flags chartFlags
	var format, output string
	var timelineOnly bool

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the chart as SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(app.Config, cmd.Flags())
			if err != nil {
				return err
			}
			today, err := flags.todayDate()
			if err != nil {
				return err
			}
			kind, err := imageFormat(format, output)
			if err != nil {
				return err
			}
			if kind == "png" && (output == "" || output == "-") {
				return fmt.Errorf("png output needs a file: use -o")
			}

			st, err := app.openChart(args[0], cfg, today)
			if err != nil {
				return err
			}
			snap, err := snapshotOf(st, args[0])
			if err != nil {
				return err
			}

			opts := render.DefaultOptions()
			opts.HeaderHeight = cfg.HeaderHeight
			if !timelineOnly {
				opts.Columns = st.VisibleColumns()
			}

			return writeOutput(cmd, output, func(w io.Writer) error {
				if kind == "png" {
					return render.PNG(w, snap, st.Schedule(), opts)
				}
				return render.WriteSVG(w, snap, st.Schedule(), opts)
			})
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "", "svg or png (default: from the output extension, else svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&timelineOnly, "timeline-only", false, "omit the task list pane")

	return cmd
}

// imageFormat resolves the render format from the flag or the output name.
func imageFormat(format, output string) (string, error) {
	if format == "" {
		if strings.EqualFold(filepath.Ext(output), ".png") {
			return "png", nil
		}
		return "svg", nil
	}
	switch f := strings.ToLower(format); f {
	case "svg", "png":
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (expected svg or png)", ErrUnknownImageFormat, format)
}
