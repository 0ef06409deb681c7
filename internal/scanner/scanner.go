// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/geewers/geewers/pkg/game"
)

type (
	// Scanner discovers the games of one platform.
	Scanner interface {
		// Platform returns the platform whose records this scanner produces.
		Platform() game.Platform
		// Scan reads the host and returns every game it could identify. It
		// never fails; skipped sources are reported in Result.Diagnostics.
		Scan(ctx context.Context) Result
	}

	// Result is the output of one scanner run.
	Result struct {
		Platform    game.Platform
		Records     []game.Record
		Diagnostics []Diagnostic
	}

	// collector accumulates a Result while a scanner runs.
	collector struct {
		res Result
	}
)

func newCollector(p game.Platform) *collector {
	return &collector{res: Result{Platform: p}}
}

func (c *collector) add(r game.Record) {
	c.res.Records = append(c.res.Records, r)
}

func (c *collector) note(sev Severity, code, path string, cause error, format string, args ...any) {
	c.res.Diagnostics = append(c.res.Diagnostics, Diagnostic{
		Platform: c.res.Platform,
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
		Cause:    cause,
	})
}

// canceled records a cancellation notice and reports whether ctx is done.
func (c *collector) canceled(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		c.note(SeverityWarning, CodeScanCanceled, "", err, "scan canceled, results are partial")
		return true
	}
	return false
}

func (c *collector) result() Result {
	return c.res
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// pathExists reports whether anything exists at path.
func pathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// lastSegment returns the final element of a path written with either
// separator, ignoring trailing separators. Launcher registries mix forward
// and back slashes regardless of the host.
func lastSegment(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
