// SPDX-License-Identifier: MPL-2.0

// Package watch follows launcher library directories and fires a debounced
// callback when their manifests change, so the catalog can be rebuilt.
//
// Each Root is watched non-recursively; only file names matching one of its
// glob patterns count. Events within the debounce window are coalesced so
// the callback fires once with the full set of changed paths.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the delay before firing the onChange callback after the
// last filesystem event.
const defaultDebounce = 500 * time.Millisecond

// ErrNoRoots is returned by New when none of the configured directories exist.
var ErrNoRoots = errors.New("watch: no existing directory to watch")

// defaultIgnores match temp and editor files launchers and editors drop next
// to manifests while rewriting them.
var defaultIgnores = []string{
	"*.tmp",
	"*.swp",
	"*~",
	".*",
}

type (
	// Root is one directory to watch.
	Root struct {
		// Dir is watched without recursion.
		Dir string
		// Patterns are doublestar globs matched against file names in Dir
		// (e.g., "appmanifest_*.acf"). Empty matches every file.
		Patterns []string
	}

	// Config holds the parameters for a Watcher.
	Config struct {
		// Roots are the directories to follow. Missing ones are skipped.
		Roots []Root

		// Ignore are additional name globs that never trigger callbacks. They
		// are merged with the built-in default ignores.
		Ignore []string

		// Debounce is the quiet period after the last event before the callback
		// fires. Zero or negative values fall back to defaultDebounce.
		Debounce time.Duration

		// OnChange is called after the debounce window closes with the
		// deduplicated, sorted list of changed absolute paths. A nil callback
		// is a no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Logger receives watcher notices. nil discards them.
		Logger *log.Logger
	}

	// Watcher monitors directories and fires a debounced callback when
	// matching files change. Run must be called exactly once; calling it a
	// second time returns an error.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		events   <-chan fsnotify.Event
		errs     <-chan error
		roots    map[string]Root
		ignores  []string
		logger   *log.Logger
		debounce time.Duration
		started  atomic.Bool
	}
)

// New creates a Watcher from the given Config and registers every existing
// root directory with fsnotify.
func New(cfg Config) (*Watcher, error) {
	for _, r := range cfg.Roots {
		if err := validatePatterns(r.Patterns, "watch"); err != nil {
			return nil, err
		}
	}
	if err := validatePatterns(cfg.Ignore, "ignore"); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		events:   fsw.Events,
		errs:     fsw.Errors,
		roots:    make(map[string]Root, len(cfg.Roots)),
		ignores:  slices.Concat(defaultIgnores, cfg.Ignore),
		logger:   logger,
		debounce: debounce,
	}

	for _, r := range cfg.Roots {
		abs, err := filepath.Abs(r.Dir)
		if err != nil {
			logger.Warn("cannot resolve watch directory", "dir", r.Dir, "error", err)
			continue
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			logger.Debug("watch directory not present, skipping", "dir", abs)
			continue
		}
		if _, dup := w.roots[abs]; dup {
			continue
		}
		if err := fsw.Add(abs); err != nil {
			fsw.Close() //nolint:errcheck // best-effort cleanup
			return nil, fmt.Errorf("watch: add directory %q: %w", abs, err)
		}
		r.Dir = abs
		w.roots[abs] = r
	}

	if len(w.roots) == 0 {
		fsw.Close() //nolint:errcheck // best-effort cleanup
		return nil, ErrNoRoots
	}
	return w, nil
}

// Dirs returns the watched directories, sorted.
func (w *Watcher) Dirs() []string {
	return slices.Sorted(maps.Keys(w.roots))
}

// Run blocks until ctx is cancelled, processing filesystem events and
// dispatching debounced callbacks. It returns nil on clean context
// cancellation and propagates fatal watcher errors. Run must be called
// exactly once; a second call returns an error immediately.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	// fire may be scheduled after ctx is cancelled; the callback also gets
	// ctx and must check it. Overlapping runs are skipped and retried.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.logger.Debug("previous rebuild still running, retrying later")
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Warn("watch callback failed", "error", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("close fsnotify watcher", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if !w.relevant(evt.Name) {
				continue
			}

			mu.Lock()
			pending[evt.Name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.errs:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.logger.Warn("fsnotify error", "error", err)
		}
	}
}

// relevant reports whether an event path belongs to a root and passes its
// name filters.
func (w *Watcher) relevant(path string) bool {
	root, ok := w.roots[filepath.Dir(path)]
	if !ok {
		return false
	}
	name := filepath.Base(path)
	return !matchAny(w.ignores, name) && (len(root.Patterns) == 0 || matchAny(root.Patterns, name))
}

func matchAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		if matched, err := doublestar.Match(pat, name); err == nil && matched {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}

// validatePatterns checks that every pattern in the slice is a valid doublestar
// glob. The label (e.g., "watch" or "ignore") is used in error messages.
func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid %s pattern %q: %w", label, pat, doublestar.ErrBadPattern)
		}
	}
	return nil
}
