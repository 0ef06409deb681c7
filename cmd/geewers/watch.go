// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/geewers/geewers/internal/config"
	"github.com/geewers/geewers/internal/issue"
	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/internal/scanner"
	"github.com/geewers/geewers/internal/watch"
)

func newWatchCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the catalog when game libraries change",
		Long: `Follow the Steam library folders and the Epic manifest directory and
rebuild the catalog whenever a game is installed, moved or removed.

Registry-only platforms (GOG, EA, Ubisoft) are rescanned on every rebuild
but cannot trigger one. Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, app, flags)
		},
	}
}

func runWatch(cmd *cobra.Command, app *App, flags *rootFlagValues) error {
	sess, err := app.session(cmd.Context(), flags)
	if err != nil {
		return err
	}

	rebuild := func(ctx context.Context, changed []string) error {
		res := sess.catalog.Catalog(ctx)
		if sess.verbose {
			renderDiagnostics(app.stderr, res.Diagnostics)
		}
		reason := "initial scan"
		if len(changed) > 0 {
			reason = fmt.Sprintf("%d change(s)", len(changed))
		}
		fmt.Fprintf(app.stdout, "%s %d game(s) in catalog (%s)\n", VerboseHighlightStyle.Render("→"), len(res.Records), reason)
		return nil
	}

	w, err := watch.New(watch.Config{
		Roots:    watchRoots(sess.cfg, app.Registry),
		Debounce: sess.cfg.Watch.Debounce,
		OnChange: rebuild,
		Logger:   sess.logger,
	})
	if errors.Is(err, watch.ErrNoRoots) {
		return newServiceError(err, issue.NothingToWatchId, "")
	}
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	_ = rebuild(cmd.Context(), nil)
	for _, dir := range w.Dirs() {
		sess.logger.Debug("watching", "dir", dir)
	}
	fmt.Fprintf(app.stdout, "\n%s Watching %d director(ies) for changes (Ctrl+C to stop)...\n\n", VerboseHighlightStyle.Render("→"), len(w.Dirs()))

	return w.Run(cmd.Context())
}

// watchRoots lists the directories whose manifests describe installed games.
func watchRoots(cfg *config.Config, reg registry.Reader) []watch.Root {
	var roots []watch.Root

	if cfg.Scanners.Steam.Enabled {
		root := cfg.Scanners.Steam.Root
		if root == "" {
			root, _ = scanner.SteamRoot(reg)
		}
		if root != "" {
			for _, lib := range scanner.SteamLibraryFolders(root) {
				roots = append(roots, watch.Root{
					Dir:      filepath.Join(lib, "steamapps"),
					Patterns: []string{"appmanifest_*.acf", "libraryfolders.vdf"},
				})
			}
		}
	}

	if cfg.Scanners.Epic.Enabled {
		roots = append(roots, watch.Root{
			Dir:      cmp.Or(cfg.Scanners.Epic.ManifestDir, scanner.DefaultEpicManifestDir),
			Patterns: []string{"*.item"},
		})
	}

	return roots
}
