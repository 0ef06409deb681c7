// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"context"
	"strings"

	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/pkg/game"
)

// uninstallRegistryRoots are the 64-bit and 32-bit views of the OS
// uninstall registry.
var uninstallRegistryRoots = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// EA scans the OS uninstall registry for titles published by Electronic Arts.
type EA struct {
	reg registry.Reader
}

// NewEA creates an EA scanner.
func NewEA(reg registry.Reader) *EA {
	return &EA{reg: reg}
}

// Platform returns game.PlatformEA.
func (e *EA) Platform() game.Platform { return game.PlatformEA }

// Scan selects uninstall entries whose publisher is EA. The executable is
// not known until launch, so ExePath holds the install directory.
func (e *EA) Scan(ctx context.Context) Result {
	c := newCollector(game.PlatformEA)

	for _, base := range uninstallRegistryRoots {
		if c.canceled(ctx) {
			break
		}

		names, err := e.reg.SubKeys(registry.LocalMachine, base)
		if err != nil {
			c.note(SeverityInfo, CodeSourceUnavailable, `HKLM\`+base, err, "uninstall registry view not present")
			continue
		}

		for _, name := range names {
			if name == "" {
				continue
			}
			key := base + `\` + name
			if !isEAPublisher(registry.StringOrEmpty(e.reg, registry.LocalMachine, key, "Publisher")) {
				continue
			}

			title := registry.StringOrEmpty(e.reg, registry.LocalMachine, key, "DisplayName")
			dir := registry.StringOrEmpty(e.reg, registry.LocalMachine, key, "InstallLocation")
			if title == "" || !pathExists(dir) {
				c.note(SeverityWarning, CodeEntrySkipped, `HKLM\`+key, nil, "EA entry %s lacks a name or an existing install location", name)
				continue
			}

			c.add(game.Record{
				ID:         name,
				Title:      title,
				Platform:   game.PlatformEA,
				ImagePath:  ScavengeImage(dir),
				ExePath:    dir,
				InstallDir: dir,
			})
		}
	}

	return c.result()
}

func isEAPublisher(publisher string) bool {
	return publisher == "EA" || strings.Contains(publisher, "Electronic Arts")
}
