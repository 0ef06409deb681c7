// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/geewers/geewers/pkg/platform"
)

type (
	// Opener hands a URI or path to the desktop's default handler.
	Opener interface {
		Open(ctx context.Context, target string) error
	}

	// SystemOpener opens targets with the host's shell-open command.
	SystemOpener struct {
		goos    string
		sandbox platform.SandboxType
	}
)

// NewSystemOpener returns an opener for the running OS, routing through the
// host when the process is sandboxed.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{goos: runtime.GOOS, sandbox: platform.DetectSandbox()}
}

// Open starts the handler and returns once it is running. The handler is
// detached from ctx so it outlives the caller, and its exit status is not
// awaited.
func (o *SystemOpener) Open(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args := platform.OpenCommand(o.goos, o.sandbox, target)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
