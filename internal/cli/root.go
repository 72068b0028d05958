package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/gantt/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the process-wide dependencies shared by CLI commands.
type App struct {
	// Config is resolved from the --config file and GANTT_* variables
	// before any subcommand runs.
	Config config.Config
	// Logger is built from the resolved log level unless set by the caller.
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// Now supplies the current time; "today" is derived from it.
	Now func() time.Time
	// RunProgram runs the interactive viewer. Tests replace it.
	RunProgram func(tea.Model) error
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) runProgram(m tea.Model) error {
	if app.RunProgram != nil {
		return app.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "gantt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, logLevel string

	root := &cobra.Command{
		Use:           "gantt",
		Short:         "Lay out and draw schedule timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
					return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
				}
			}
			app.Config = cfg
			if app.Logger == nil {
				app.Logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $GANTT_CONFIG)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newLayoutCmd(app),
		newRenderCmd(app),
		newShowCmd(app),
		newViewCmd(app),
	)

	return root
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
