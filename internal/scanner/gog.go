// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"context"
	"path/filepath"

	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/pkg/game"
)

// gogRegistryRoots are the 64-bit and 32-bit views of the GOG Galaxy
// installs tree.
var gogRegistryRoots = []string{
	`SOFTWARE\GOG.com\Games`,
	`SOFTWARE\WOW6432Node\GOG.com\Games`,
}

// GOG scans the GOG Galaxy registry entries.
type GOG struct {
	reg registry.Reader
}

// NewGOG creates a GOG scanner.
func NewGOG(reg registry.Reader) *GOG {
	return &GOG{reg: reg}
}

// Platform returns game.PlatformGOG.
func (g *GOG) Platform() game.Platform { return game.PlatformGOG }

// Scan reads every game subkey under both registry views.
func (g *GOG) Scan(ctx context.Context) Result {
	c := newCollector(game.PlatformGOG)

	for _, base := range gogRegistryRoots {
		if c.canceled(ctx) {
			break
		}

		ids, err := g.reg.SubKeys(registry.LocalMachine, base)
		if err != nil {
			c.note(SeverityInfo, CodeSourceUnavailable, `HKLM\`+base, err, "GOG registry view not present")
			continue
		}

		for _, id := range ids {
			if id == "" {
				continue
			}
			key := base + `\` + id
			title := registry.StringOrEmpty(g.reg, registry.LocalMachine, key, "gameName")
			dir := registry.StringOrEmpty(g.reg, registry.LocalMachine, key, "path")
			exe := registry.StringOrEmpty(g.reg, registry.LocalMachine, key, "exe")

			if title == "" || !pathExists(dir) {
				c.note(SeverityWarning, CodeEntrySkipped, `HKLM\`+key, nil, "GOG entry %s lacks a name or an existing install path", id)
				continue
			}

			c.add(game.Record{
				ID:         id,
				Title:      title,
				Platform:   game.PlatformGOG,
				ImagePath:  ScavengeImage(dir),
				ExePath:    filepath.Join(dir, exe),
				InstallDir: dir,
			})
		}
	}

	return c.result()
}
