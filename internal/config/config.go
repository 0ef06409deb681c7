// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"

	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/pkg/cueutil"
	"github.com/geewers/geewers/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "geewers"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. GEEWERS_UI_VERBOSE.
	EnvPrefix = "GEEWERS"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the geewers configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the default config file location.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// DataDir returns the directory for the overlay data file: the configured
// data_dir, or the config directory when unset.
func DataDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return ConfigDir()
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. It returns the config and the file it was read from
// ("" when only defaults and the environment apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	// An explicit --config path must exist.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'geewers config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}
		if cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt); fileExists(cuePath) {
			resolvedPath = cuePath
		}
		// No config file: defaults and environment only.
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Compare your file with the output of 'geewers config dump'").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if ok, errs := cfg.IsValid(); !ok {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check GEEWERS_* environment variables for typos").
			Wrap(errs[0]).
			BuildError()
	}

	if err := expandPaths(&cfg, os.Getenv); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("expand configuration paths").
			WithResource(resolvedPath).
			WithSuggestion("Quote literal '$' characters or remove unmatched braces").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("scanners.steam.enabled", defaults.Scanners.Steam.Enabled)
	v.SetDefault("scanners.steam.root", defaults.Scanners.Steam.Root)
	v.SetDefault("scanners.gog.enabled", defaults.Scanners.GOG.Enabled)
	v.SetDefault("scanners.epic.enabled", defaults.Scanners.Epic.Enabled)
	v.SetDefault("scanners.epic.manifest_dir", defaults.Scanners.Epic.ManifestDir)
	v.SetDefault("scanners.ea.enabled", defaults.Scanners.EA.Enabled)
	v.SetDefault("scanners.ubisoft.enabled", defaults.Scanners.Ubisoft.Enabled)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce.String())
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper validates a CUE file against #Config and merges its
// contents into Viper, keeping defaults for absent keys.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, "#Config", data, path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// expandPaths expands $VAR, ${VAR} and ~ in path-valued settings.
func expandPaths(cfg *Config, env func(string) string) error {
	for _, p := range []*string{&cfg.DataDir, &cfg.Scanners.Steam.Root, &cfg.Scanners.Epic.ManifestDir} {
		expanded, err := ExpandPath(*p, env)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// ExpandPath expands a leading ~ and $VAR or ${VAR} references in p. Paths
// without either are returned unchanged, so Windows backslashes survive.
func ExpandPath(p string, env func(string) string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home := env("HOME")
		if home == "" {
			home = env("USERPROFILE")
		}
		p = home + p[1:]
	}
	if !strings.Contains(p, "$") {
		return p, nil
	}
	// The expander treats backslashes as escapes.
	expanded, err := shell.Expand(filepath.ToSlash(p), env)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", p, err)
	}
	return filepath.FromSlash(expanded), nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file to path unless one
// already exists. It reports whether a file was created.
func CreateDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// geewers configuration file\n")
	sb.WriteString("// Values may reference environment variables, e.g. \"$HOME/games\".\n\n")

	if cfg.DataDir != "" {
		fmt.Fprintf(&sb, "data_dir: %q\n\n", cfg.DataDir)
	}

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nscanners: {\n")
	sb.WriteString("\tsteam: {\n")
	fmt.Fprintf(&sb, "\t\tenabled: %v\n", cfg.Scanners.Steam.Enabled)
	if cfg.Scanners.Steam.Root != "" {
		fmt.Fprintf(&sb, "\t\troot:    %q\n", cfg.Scanners.Steam.Root)
	}
	sb.WriteString("\t}\n")
	fmt.Fprintf(&sb, "\tgog: enabled: %v\n", cfg.Scanners.GOG.Enabled)
	sb.WriteString("\tepic: {\n")
	fmt.Fprintf(&sb, "\t\tenabled:      %v\n", cfg.Scanners.Epic.Enabled)
	fmt.Fprintf(&sb, "\t\tmanifest_dir: %q\n", cfg.Scanners.Epic.ManifestDir)
	sb.WriteString("\t}\n")
	fmt.Fprintf(&sb, "\tea: enabled:      %v\n", cfg.Scanners.EA.Enabled)
	fmt.Fprintf(&sb, "\tubisoft: enabled: %v\n", cfg.Scanners.Ubisoft.Enabled)
	sb.WriteString("}\n")

	sb.WriteString("\nwatch: {\n")
	fmt.Fprintf(&sb, "\tdebounce: %q\n", cfg.Watch.Debounce.String())
	sb.WriteString("}\n")

	return sb.String()
}
