// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/geewers/geewers/internal/scanner"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultDebounce is the default watcher debounce window.
	DefaultDebounce = 500 * time.Millisecond
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDebounce is returned when the watch debounce is negative.
	ErrInvalidDebounce = errors.New("invalid debounce")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidDebounceError is returned when the watch debounce is negative.
	InvalidDebounceError struct {
		Value time.Duration
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// DataDir is where the overlay data file lives. Empty means the config directory.
		DataDir string `json:"data_dir" mapstructure:"data_dir"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Scanners enables and locates the per-platform scanners.
		Scanners ScannersConfig `json:"scanners" mapstructure:"scanners"`
		// Watch configures `geewers watch`.
		Watch WatchConfig `json:"watch" mapstructure:"watch"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light")
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and scanner diagnostics.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// ScannersConfig holds one block per platform scanner.
	ScannersConfig struct {
		Steam   SteamScannerConfig `json:"steam" mapstructure:"steam"`
		GOG     ToggleConfig       `json:"gog" mapstructure:"gog"`
		Epic    EpicScannerConfig  `json:"epic" mapstructure:"epic"`
		EA      ToggleConfig       `json:"ea" mapstructure:"ea"`
		Ubisoft ToggleConfig       `json:"ubisoft" mapstructure:"ubisoft"`
	}

	// ToggleConfig enables or disables a registry-only scanner.
	ToggleConfig struct {
		Enabled bool `json:"enabled" mapstructure:"enabled"`
	}

	// SteamScannerConfig configures the Steam scanner.
	SteamScannerConfig struct {
		Enabled bool `json:"enabled" mapstructure:"enabled"`
		// Root overrides the Steam installation root read from the registry.
		Root string `json:"root" mapstructure:"root"`
	}

	// EpicScannerConfig configures the Epic scanner.
	EpicScannerConfig struct {
		Enabled bool `json:"enabled" mapstructure:"enabled"`
		// ManifestDir is the launcher's manifest directory.
		ManifestDir string `json:"manifest_dir" mapstructure:"manifest_dir"`
	}

	// WatchConfig configures the library watcher.
	WatchConfig struct {
		// Debounce is the quiet period before a rebuild.
		Debounce time.Duration `json:"debounce" mapstructure:"debounce"`
	}
)

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined values,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

func (e *InvalidDebounceError) Error() string {
	return fmt.Sprintf("invalid watch debounce %s (must not be negative)", e.Value)
}

func (e *InvalidDebounceError) Unwrap() error { return ErrInvalidDebounce }

// IsValid returns whether the watch settings are usable.
func (c WatchConfig) IsValid() (bool, []error) {
	if c.Debounce < 0 {
		return false, []error{&InvalidDebounceError{Value: c.Debounce}}
	}
	return true, nil
}

// IsValid validates every field of the configuration and reports all
// problems at once.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.Watch.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Scanners: ScannersConfig{
			Steam:   SteamScannerConfig{Enabled: true},
			GOG:     ToggleConfig{Enabled: true},
			Epic:    EpicScannerConfig{Enabled: true, ManifestDir: scanner.DefaultEpicManifestDir},
			EA:      ToggleConfig{Enabled: true},
			Ubisoft: ToggleConfig{Enabled: true},
		},
		Watch: WatchConfig{Debounce: DefaultDebounce},
	}
}
