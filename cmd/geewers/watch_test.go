// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/geewers/geewers/internal/config"
	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/internal/testutil"
)

func TestWatchRoots(t *testing.T) {
	t.Parallel()

	steamRoot := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(steamRoot, "steamapps"))
	epicDir := t.TempDir()

	reg := registry.NewMemory().Set(registry.CurrentUser, `Software\Valve\Steam`, "SteamPath", steamRoot)

	cfg := config.DefaultConfig()
	cfg.Scanners.Epic.ManifestDir = epicDir

	roots := watchRoots(cfg, reg)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2: %+v", len(roots), roots)
	}
	if roots[0].Dir != filepath.Join(steamRoot, "steamapps") {
		t.Errorf("first root = %s, want the Steam library", roots[0].Dir)
	}
	if roots[1].Dir != epicDir || roots[1].Patterns[0] != "*.item" {
		t.Errorf("second root = %+v, want the Epic manifest dir", roots[1])
	}

	cfg.Scanners.Steam.Enabled = false
	cfg.Scanners.Epic.Enabled = false
	if roots := watchRoots(cfg, reg); len(roots) != 0 {
		t.Errorf("disabled scanners should add no roots, got %+v", roots)
	}
}

func TestWatchRoots_ConfiguredSteamRoot(t *testing.T) {
	t.Parallel()

	steamRoot := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Scanners.Steam.Root = steamRoot
	cfg.Scanners.Epic.Enabled = false

	roots := watchRoots(cfg, registry.NewMemory())
	if len(roots) != 1 || roots[0].Dir != filepath.Join(steamRoot, "steamapps") {
		t.Errorf("roots = %+v, want the configured Steam library", roots)
	}
}

func TestWatch_NothingToWatch(t *testing.T) {
	t.Parallel()

	cli := newTestCLI(t, testConfig(t.TempDir(), filepath.Join(t.TempDir(), "missing")))
	assertIssue(t, cli.run(t, "watch"), issue.NothingToWatchId)
}
