// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/config"
	"github.com/geewers/geewers/internal/issue"
)

// newConfigCommand creates the `geewers config` command tree.
// Subcommands that read configuration use the App's config provider.
func newConfigCommand(app *App, flags *rootFlagValues) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage geewers configuration",
		Long: `Manage geewers configuration.

Configuration is stored in:
  - Linux: ~/.config/geewers/config.cue
  - macOS: ~/Library/Application Support/geewers/config.cue
  - Windows: %APPDATA%\geewers\config.cue

Every key can be overridden with a GEEWERS_ environment variable, for
example GEEWERS_SCANNERS_STEAM_ROOT or GEEWERS_UI_VERBOSE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfigStrict(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(loaded.Config))
			return nil
		},
	})

	return cfgCmd
}

// loadConfigStrict loads configuration without falling back to defaults.
func loadConfigStrict(ctx context.Context, app *App, flags *rootFlagValues) (config.Loaded, error) {
	loaded, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return config.Loaded{}, newServiceError(err, issue.ConfigLoadFailedId, "")
	}
	return loaded, nil
}

func showConfig(ctx context.Context, app *App, flags *rootFlagValues) error {
	loaded, err := loadConfigStrict(ctx, app, flags)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	w := app.stdout

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	value := func(v any) string { return valueStyle.Render(fmt.Sprint(v)) }
	pathValue := func(p string) string {
		if p == "" {
			return SubtitleStyle.Render("(default)")
		}
		return valueStyle.Render(p)
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if loaded.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("data_dir"), pathValue(cfg.DataDir))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", value(cfg.UI.ColorScheme))
	fmt.Fprintf(w, "  verbose: %s\n", value(cfg.UI.Verbose))

	sc := cfg.Scanners
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("scanners"))
	fmt.Fprintf(w, "  steam: %s  root: %s\n", value(enabledLabel(sc.Steam.Enabled)), pathValue(sc.Steam.Root))
	fmt.Fprintf(w, "  epic: %s  manifest_dir: %s\n", value(enabledLabel(sc.Epic.Enabled)), pathValue(sc.Epic.ManifestDir))
	fmt.Fprintf(w, "  gog: %s\n", value(enabledLabel(sc.GOG.Enabled)))
	fmt.Fprintf(w, "  ea: %s\n", value(enabledLabel(sc.EA.Enabled)))
	fmt.Fprintf(w, "  ubisoft: %s\n", value(enabledLabel(sc.Ubisoft.Enabled)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("watch"))
	fmt.Fprintf(w, "  debounce: %s\n", value(cfg.Watch.Debounce))

	return nil
}

func enabledLabel(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func initConfig(w io.Writer) error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created, err := config.CreateDefaultConfig(cfgPath)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(w, "Config file already exists at: %s\n", cfgPath)
		return nil
	}

	fmt.Fprintf(w, "%s Created default config at: %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	fmt.Fprintln(w, cfgPath)
	return nil
}
