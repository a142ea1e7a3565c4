package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/logbook/internal/config"
	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Logs     service.LogService
	Settings service.SettingsService
	Reports  service.ReportService
	Exports  service.ExportService

	Lang      string
	ExportDir string

	// Now is the clock shown in the TUI status line; nil means time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the TUI only when it returns true.
	IsInteractive func() bool

	// Confirm asks a yes/no question; nil uses a huh confirmation form.
	Confirm func(title string) (bool, error)
}

func (a *App) labels() i18n.Labels {
	return i18n.LabelsFor(a.Lang)
}

func (a *App) t(key string) string {
	return i18n.Translate(a.Lang, key)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// Wiring builds the App once configuration is loaded. The returned
// function releases whatever the App holds open.
type Wiring func(cfg *config.Config) (*App, func() error, error)

// Execute runs the root command with args (os.Args when nil) and releases
// the wired resources afterwards, whether or not the command failed.
func Execute(ctx context.Context, wire Wiring, args []string) error {
	var release func() error
	root := NewRootCmd(func(cfg *config.Config) (*App, func() error, error) {
		a, closeFn, err := wire(cfg)
		release = closeFn
		return a, closeFn, err
	})
	if args != nil {
		root.SetArgs(args)
	}

	err := root.ExecuteContext(ctx)
	if release != nil {
		if cerr := release(); cerr != nil && err == nil {
			err = fmt.Errorf("closing storage: %w", cerr)
		}
	}
	return err
}

// NewRootCmd creates the top-level "logbook" command. Services are wired
// lazily in PersistentPreRunE so the persistent flags can shape the
// configuration first. Releasing them is left to the caller (see Execute).
func NewRootCmd(wire Wiring) *cobra.Command {
	app := &App{}
	var configPath string

	root := &cobra.Command{
		Use:           "logbook",
		Short:         "Timestamped work log with per-category time summaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			cfg, err := config.Load(path, cmd.Flags())
			if err != nil {
				return err
			}
			built, _, err := wire(cfg)
			if err != nil {
				return fmt.Errorf("initializing: %w", err)
			}
			*app = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.logbook/config.yaml)")
	pf.String("db", "", "SQLite database path")
	pf.String("storage", "", "storage backend: sqlite or redis")
	pf.String("lang", "", "language: en or ja (default from $LANG)")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newStampCmd(app),
		newShowCmd(app),
		newSaveCmd(app),
		newCheckCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newExportsCmd(app),
		newClearCmd(app),
		newConfigCmd(app),
		newTUICmd(app),
	)

	return root
}
