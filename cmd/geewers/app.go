// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/geewers/geewers/internal/catalog"
	"github.com/geewers/geewers/internal/config"
	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/internal/launch"
	"github.com/geewers/geewers/internal/overlay"
	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/internal/scanner"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra handler receives an App and reaches the engine
	// through the session it builds.
	App struct {
		Config   config.Provider
		Registry registry.Reader
		Opener   launch.Opener
		stdout   io.Writer
		stderr   io.Writer

		once    sync.Once
		sess    *session
		sessErr error
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config   config.Provider
		Registry registry.Reader
		Opener   launch.Opener
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// session is the engine state for one CLI invocation.
	session struct {
		cfg        *config.Config
		cfgPath    string
		verbose    bool
		logger     *log.Logger
		store      *overlay.Store
		catalog    *catalog.Service
		dispatcher *launch.Dispatcher
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		deps.Registry = registry.System()
	}
	if deps.Opener == nil {
		deps.Opener = launch.NewSystemOpener()
	}

	return &App{
		Config:   deps.Config,
		Registry: deps.Registry,
		Opener:   deps.Opener,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// session loads configuration and builds the engine once per invocation.
func (a *App) session(ctx context.Context, flags *rootFlagValues) (*session, error) {
	a.once.Do(func() {
		a.sess, a.sessErr = a.newSession(ctx, flags)
	})
	return a.sess, a.sessErr
}

func (a *App) newSession(ctx context.Context, flags *rootFlagValues) (*session, error) {
	loaded, err := a.loadConfig(ctx, flags)
	if err != nil {
		return nil, err
	}
	cfg := loaded.Config

	verbose := flags.verbose || cfg.UI.Verbose
	logger := newLogger(a.stderr, verbose)

	dataDir, err := config.DataDir(cfg)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("locate data directory").
			WithSuggestion("Set data_dir in your configuration").
			Wrap(err).
			BuildError()
	}

	store := overlay.NewStore(overlay.DataFile(dataDir), overlay.WithLogger(logger))
	store.Load()

	return &session{
		cfg:        cfg,
		cfgPath:    loaded.Path,
		verbose:    verbose,
		logger:     logger,
		store:      store,
		catalog:    catalog.NewService(store, buildScanners(cfg, a.Registry), logger),
		dispatcher: launch.NewDispatcher(a.Opener, logger),
	}, nil
}

// loadConfig loads configuration via the provider. An explicit --config file
// must load; otherwise a broken file falls back to defaults with a warning so
// the catalog stays usable.
func (a *App) loadConfig(ctx context.Context, flags *rootFlagValues) (config.Loaded, error) {
	loaded, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err == nil {
		return loaded, nil
	}
	if flags.configPath != "" || errors.Is(err, context.Canceled) {
		return config.Loaded{}, newServiceError(err, issue.ConfigLoadFailedId, "")
	}

	fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, flags.verbose))
	return config.Loaded{Config: config.DefaultConfig()}, nil
}

// buildScanners returns the enabled scanners in discovery order.
func buildScanners(cfg *config.Config, reg registry.Reader) []scanner.Scanner {
	sc := cfg.Scanners

	var out []scanner.Scanner
	if sc.Steam.Enabled {
		out = append(out, scanner.NewSteam(reg, sc.Steam.Root))
	}
	if sc.Epic.Enabled {
		out = append(out, scanner.NewEpic(sc.Epic.ManifestDir))
	}
	if sc.GOG.Enabled {
		out = append(out, scanner.NewGOG(reg))
	}
	if sc.EA.Enabled {
		out = append(out, scanner.NewEA(reg))
	}
	if sc.Ubisoft.Enabled {
		out = append(out, scanner.NewUbisoft(reg))
	}
	return out
}

// newLogger builds the process logger: debug with timestamps when verbose,
// warnings only otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "geewers",
		ReportTimestamp: verbose,
		Level:           level,
	})
}

// renderDiagnostics writes scanner diagnostics to stderr with lipgloss styling.
func renderDiagnostics(stderr io.Writer, diags []scanner.Diagnostic) {
	for _, diag := range diags {
		prefix := VerboseStyle.Render("info")
		if diag.Severity == scanner.SeverityWarning {
			prefix = WarningStyle.Render("warning")
		}
		platform := VerboseHighlightStyle.Render(diag.Platform.String())

		if diag.Path != "" {
			_, _ = fmt.Fprintf(stderr, "%s [%s]: %s (%s)\n", prefix, platform, diag.Message, diag.Path)
			continue
		}
		_, _ = fmt.Fprintf(stderr, "%s [%s]: %s\n", prefix, platform, diag.Message)
	}
}

// colorScheme returns the configured color scheme once a session exists.
func (a *App) colorScheme() config.ColorScheme {
	if a.sess != nil {
		return a.sess.cfg.UI.ColorScheme
	}
	return config.ColorSchemeAuto
}
