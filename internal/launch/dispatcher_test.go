// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/geewers/geewers/pkg/game"
)

type recordingOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (r *recordingOpener) Open(_ context.Context, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, target)
	return r.err
}

func TestDispatcher_Launch(t *testing.T) {
	t.Parallel()

	op := &recordingOpener{}
	d := NewDispatcher(op, nil)

	got := d.Launch(t.Context(), game.PlatformSteam, "10", "")
	if got.Value != "steam://run/10" {
		t.Errorf("Launch() = %+v", got)
	}
	d.OpenLauncherPage(t.Context(), game.PlatformEA, "x")

	if len(op.opened) != 2 || op.opened[0] != "steam://run/10" || op.opened[1] != "origin2://library" {
		t.Errorf("opened = %v", op.opened)
	}
}

func TestDispatcher_LogsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	op := &recordingOpener{err: errors.New("no handler for steam://")}
	d := NewDispatcher(op, logger)

	d.Launch(t.Context(), game.PlatformSteam, "10", "")
	if !strings.Contains(buf.String(), "no handler for steam://") {
		t.Errorf("log output = %q, want opener error", buf.String())
	}

	buf.Reset()
	d.Launch(t.Context(), game.Platform("Amiga"), "1", "")
	if !strings.Contains(buf.String(), ErrNothingToOpen.Error()) {
		t.Errorf("log output = %q, want %q", buf.String(), ErrNothingToOpen)
	}
	if len(op.opened) != 1 {
		t.Errorf("opener called %d times, want 1", len(op.opened))
	}
}

func TestSystemOpener_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := NewSystemOpener().Open(ctx, "steam://run/10"); !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}
