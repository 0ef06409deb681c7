// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/geewers/geewers/pkg/game"
)

// ErrNothingToOpen is reported when a platform has no launch target.
var ErrNothingToOpen = errors.New("nothing to open")

// Dispatcher resolves and opens launch targets. Failures are logged, never
// returned.
type Dispatcher struct {
	opener Opener
	logger *log.Logger
}

// NewDispatcher creates a dispatcher. A nil logger discards output.
func NewDispatcher(opener Opener, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{opener: opener, logger: logger}
}

// Launch starts a game and returns the target it opened.
func (d *Dispatcher) Launch(ctx context.Context, p game.Platform, id, exePath string) Target {
	t := Resolve(p, id, exePath)
	d.open(ctx, "launch", p, id, t)
	return t
}

// OpenLauncherPage shows a game in its launcher and returns the target.
func (d *Dispatcher) OpenLauncherPage(ctx context.Context, p game.Platform, id string) Target {
	t := ResolveLauncherPage(p, id)
	d.open(ctx, "open launcher page", p, id, t)
	return t
}

func (d *Dispatcher) open(ctx context.Context, op string, p game.Platform, id string, t Target) {
	if t.IsZero() {
		d.logger.Warn(op+" failed", "platform", p, "id", id, "error", ErrNothingToOpen)
		return
	}
	d.logger.Debug(op, "platform", p, "id", id, "kind", t.Kind, "target", t.Value)
	if err := d.opener.Open(ctx, t.Value); err != nil {
		d.logger.Warn(op+" failed", "platform", p, "id", id, "target", t.Value, "error", err)
	}
}
