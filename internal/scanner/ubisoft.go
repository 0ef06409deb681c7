// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"context"

	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/pkg/game"
)

const ubisoftRegistryRoot = `SOFTWARE\WOW6432Node\Ubisoft\Launcher\Installs`

// Ubisoft scans the Ubisoft Connect installs registry subtree.
type Ubisoft struct {
	reg registry.Reader
}

// NewUbisoft creates a Ubisoft scanner.
func NewUbisoft(reg registry.Reader) *Ubisoft {
	return &Ubisoft{reg: reg}
}

// Platform returns game.PlatformUbisoft.
func (u *Ubisoft) Platform() game.Platform { return game.PlatformUbisoft }

// Scan reads InstallDir from each install subkey. The registry holds no
// display name, so the title is the install folder's name.
func (u *Ubisoft) Scan(ctx context.Context) Result {
	c := newCollector(game.PlatformUbisoft)

	ids, err := u.reg.SubKeys(registry.LocalMachine, ubisoftRegistryRoot)
	if err != nil {
		c.note(SeverityInfo, CodeSourceUnavailable, `HKLM\`+ubisoftRegistryRoot, err, "Ubisoft Connect not installed")
		return c.result()
	}

	for _, id := range ids {
		if c.canceled(ctx) {
			break
		}
		if id == "" {
			continue
		}

		key := ubisoftRegistryRoot + `\` + id
		dir := registry.StringOrEmpty(u.reg, registry.LocalMachine, key, "InstallDir")
		if !pathExists(dir) {
			c.note(SeverityWarning, CodeEntrySkipped, `HKLM\`+key, nil, "Ubisoft install %s has no existing InstallDir", id)
			continue
		}

		c.add(game.Record{
			ID:         id,
			Title:      lastSegment(dir),
			Platform:   game.PlatformUbisoft,
			ImagePath:  ScavengeImage(dir),
			InstallDir: dir,
		})
	}

	return c.result()
}
