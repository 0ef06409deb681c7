// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/geewers/geewers/pkg/game"
)

const (
	// DefaultEpicManifestDir is where the Epic Games Launcher writes one
	// manifest per installed title.
	DefaultEpicManifestDir = `C:\ProgramData\Epic\EpicGamesLauncher\Data\Manifests`

	// epicExcludedApp is an editor tool the launcher installs alongside a
	// game; it is not itself playable.
	epicExcludedApp = "HelloNeighborModKit"
)

type (
	// Epic scans Epic Games Launcher manifest files.
	Epic struct {
		dir string
	}

	epicManifest struct {
		AppName         string `json:"AppName"`
		DisplayName     string `json:"DisplayName"`
		InstallLocation string `json:"InstallLocation"`
	}
)

// NewEpic creates an Epic scanner reading manifests from dir. An empty dir
// selects DefaultEpicManifestDir.
func NewEpic(dir string) *Epic {
	if dir == "" {
		dir = DefaultEpicManifestDir
	}
	return &Epic{dir: dir}
}

// Platform returns game.PlatformEpic.
func (e *Epic) Platform() game.Platform { return game.PlatformEpic }

// Scan parses every file in the manifest directory.
func (e *Epic) Scan(ctx context.Context) Result {
	c := newCollector(game.PlatformEpic)

	entries, err := os.ReadDir(e.dir)
	if err != nil {
		c.note(SeverityInfo, CodeSourceUnavailable, e.dir, err, "Epic manifest directory not found")
		return c.result()
	}

	for _, entry := range entries {
		if c.canceled(ctx) {
			break
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(e.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			c.note(SeverityWarning, CodeManifestUnreadable, path, err, "cannot read Epic manifest")
			continue
		}

		var m epicManifest
		if err := json.Unmarshal(data, &m); err != nil {
			c.note(SeverityWarning, CodeManifestInvalid, path, err, "Epic manifest is not valid JSON")
			continue
		}

		if m.DisplayName == "" {
			c.note(SeverityWarning, CodeEntrySkipped, path, nil, "Epic manifest has no display name")
			continue
		}
		if m.AppName == "" {
			c.note(SeverityWarning, CodeEntrySkipped, path, nil, "Epic manifest has no app name")
			continue
		}
		if m.AppName == epicExcludedApp {
			continue
		}

		c.add(game.Record{
			ID:         m.AppName,
			Title:      m.DisplayName,
			Platform:   game.PlatformEpic,
			ImagePath:  ScavengeImage(m.InstallLocation),
			InstallDir: m.InstallLocation,
		})
	}

	return c.result()
}
