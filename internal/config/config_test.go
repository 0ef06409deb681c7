// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/internal/scanner"
	"github.com/geewers/geewers/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, path, content)
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	s := cfg.Scanners
	if !s.Steam.Enabled || !s.GOG.Enabled || !s.Epic.Enabled || !s.EA.Enabled || !s.Ubisoft.Enabled {
		t.Errorf("expected every scanner enabled by default, got %+v", s)
	}
	if s.Epic.ManifestDir != scanner.DefaultEpicManifestDir {
		t.Errorf("expected default Epic manifest dir, got %q", s.Epic.ManifestDir)
	}
	if cfg.Watch.Debounce != DefaultDebounce {
		t.Errorf("expected debounce %s, got %s", DefaultDebounce, cfg.Watch.Debounce)
	}
	if ok, errs := cfg.IsValid(); !ok {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup is Linux-specific")
	}

	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join("/tmp/test-xdg-config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}
	restore()

	t.Cleanup(testutil.MustUnsetenv(t, "XDG_CONFIG_HOME"))
	home := t.TempDir()
	t.Cleanup(testutil.SetHomeDir(t, home))
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil || got != dir {
		t.Fatalf("ConfigDir() = %q, %v; want %q", got, err, dir)
	}
	path, err := ConfigFilePath()
	if err != nil || path != filepath.Join(dir, "config.cue") {
		t.Errorf("ConfigFilePath() = %q, %v", path, err)
	}
	data, err := DataDir(DefaultConfig())
	if err != nil || data != dir {
		t.Errorf("DataDir(default) = %q, %v; want %q", data, err, dir)
	}
	data, _ = DataDir(&Config{DataDir: "/srv/geewers"})
	if data != "/srv/geewers" {
		t.Errorf("DataDir(explicit) = %q", data)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if cfg.Watch.Debounce != DefaultDebounce || !cfg.Scanners.Steam.Enabled {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, `
data_dir: "/var/lib/geewers"
ui: color_scheme: "dark"
scanners: {
	steam: root: "/opt/steam"
	ea: enabled: false
}
watch: debounce: "2s"
`)

	cfg, path, err := loadWithOptions(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.DataDir != "/var/lib/geewers" || cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Scanners.Steam.Root != "/opt/steam" || !cfg.Scanners.Steam.Enabled {
		t.Errorf("steam = %+v, want root set and still enabled", cfg.Scanners.Steam)
	}
	if cfg.Scanners.EA.Enabled || !cfg.Scanners.GOG.Enabled {
		t.Errorf("scanners = %+v, want only EA disabled", cfg.Scanners)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("debounce = %s, want 2s", cfg.Watch.Debounce)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown field", `colour: "red"`, "colour"},
		{"wrong type", `ui: verbose: "yes"`, "ui.verbose"},
		{"bad enum", `ui: color_scheme: "neon"`, "ui.color_scheme"},
		{"bad duration", `watch: debounce: "soon"`, "watch.debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, _, err := loadWithOptions(t.Context(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %q", err, tt.field)
			}
		})
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, _, err := loadWithOptions(t.Context(), LoadOptions{ConfigFilePath: missing})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("error = %v, want config file not found", err)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `ui: verbose: true`)
	cfg, got, err := loadWithOptions(t.Context(), LoadOptions{ConfigFilePath: path, ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if got != path || !cfg.UI.Verbose {
		t.Errorf("path = %q, verbose = %v", got, cfg.UI.Verbose)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "GEEWERS_UI_VERBOSE", "true"))
	t.Cleanup(testutil.MustSetenv(t, "GEEWERS_SCANNERS_UBISOFT_ENABLED", "false"))
	t.Cleanup(testutil.MustSetenv(t, "GEEWERS_WATCH_DEBOUNCE", "1s"))
	t.Cleanup(testutil.MustSetenv(t, "GEEWERS_TEST_LIBRARY", "/mnt/library"))

	dir := t.TempDir()
	writeConfig(t, dir, `scanners: steam: root: "${GEEWERS_TEST_LIBRARY}/Steam"`)

	cfg, _, err := loadWithOptions(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("GEEWERS_UI_VERBOSE should enable verbose")
	}
	if cfg.Scanners.Ubisoft.Enabled {
		t.Error("GEEWERS_SCANNERS_UBISOFT_ENABLED should disable Ubisoft")
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("debounce = %s, want 1s", cfg.Watch.Debounce)
	}
	if want := filepath.FromSlash("/mnt/library/Steam"); cfg.Scanners.Steam.Root != want {
		t.Errorf("steam root = %q, want %q", cfg.Scanners.Steam.Root, want)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "GEEWERS_UI_COLOR_SCHEME", "neon"))

	_, _, err := loadWithOptions(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
	if err != nil && !strings.Contains(err.Error(), "neon") {
		t.Errorf("error %q should name the rejected value", err)
	}
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	env := func(k string) string {
		switch k {
		case "HOME":
			return "/home/gamer"
		case "GAMES":
			return "/data/games"
		}
		return ""
	}

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: `C:\ProgramData\Epic`, want: `C:\ProgramData\Epic`},
		{in: "~", want: "/home/gamer"},
		{in: "~/steam", want: filepath.FromSlash("/home/gamer/steam")},
		{in: "$GAMES/steam", want: filepath.FromSlash("/data/games/steam")},
		{in: "${GAMES}", want: filepath.FromSlash("/data/games")},
		{in: "$UNSET/x", want: filepath.FromSlash("/x")},
		{in: "${GAMES", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ExpandPath(tt.in, env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandPath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.cue")

	created, err := CreateDefaultConfig(path)
	if err != nil || !created {
		t.Fatalf("CreateDefaultConfig() = %v, %v", created, err)
	}
	created, err = CreateDefaultConfig(path)
	if err != nil || created {
		t.Errorf("second CreateDefaultConfig() = %v, %v; want no-op", created, err)
	}

	cfg, _, err := loadWithOptions(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("generated config = %+v, want defaults", cfg)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	in := DefaultConfig()
	in.DataDir = "/srv/data"
	in.UI.Verbose = true
	in.Scanners.Steam.Root = "/opt/steam"
	in.Scanners.GOG.Enabled = false
	in.Watch.Debounce = 1500 * time.Millisecond

	path := writeConfig(t, t.TempDir(), GenerateCUE(in))
	out, _, err := loadWithOptions(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestProvider_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `ui: color_scheme: "light"`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Path != path || loaded.Config.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("Load() = %+v", loaded)
	}
}
