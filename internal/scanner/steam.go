// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/geewers/geewers/internal/registry"
	"github.com/geewers/geewers/pkg/game"
)

const (
	steamRegistryKey   = `Software\Valve\Steam`
	steamRegistryValue = "SteamPath"

	steamManifestPrefix = "appmanifest_"
	steamManifestSuffix = ".acf"

	// steamPlaceholderTitle is used when a manifest has a name line whose
	// value cannot be extracted.
	steamPlaceholderTitle = "Steam Game"
)

// Steam scans Steam library folders for installed app manifests.
type Steam struct {
	reg  registry.Reader
	root string
}

// NewSteam creates a Steam scanner. When root is empty the Steam root is read
// from the registry.
func NewSteam(reg registry.Reader, root string) *Steam {
	return &Steam{reg: reg, root: root}
}

// SteamRoot reads the Steam installation root from the registry.
func SteamRoot(reg registry.Reader) (string, error) {
	root, err := reg.String(registry.CurrentUser, steamRegistryKey, steamRegistryValue)
	if err != nil {
		return "", err
	}
	if root == "" {
		return "", &registry.KeyError{Root: registry.CurrentUser, Path: steamRegistryKey, Value: steamRegistryValue, Err: registry.ErrNotExist}
	}
	return root, nil
}

// Platform returns game.PlatformSteam.
func (s *Steam) Platform() game.Platform { return game.PlatformSteam }

// Scan enumerates appmanifest_<id>.acf files in every library folder.
func (s *Steam) Scan(ctx context.Context) Result {
	c := newCollector(game.PlatformSteam)

	root := s.root
	if root == "" {
		var err error
		root, err = SteamRoot(s.reg)
		if err != nil {
			c.note(SeverityInfo, CodeSourceUnavailable, `HKCU\`+steamRegistryKey, err, "Steam installation not found")
			return c.result()
		}
	}

	coverDir := filepath.Join(root, "appcache", "librarycache")

	for _, lib := range SteamLibraryFolders(root) {
		if c.canceled(ctx) {
			break
		}

		appsDir := filepath.Join(lib, "steamapps")
		entries, err := os.ReadDir(appsDir)
		if err != nil {
			c.note(SeverityWarning, CodeSourceUnavailable, appsDir, err, "Steam library folder unreadable")
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, steamManifestPrefix) || !strings.HasSuffix(name, steamManifestSuffix) {
				continue
			}

			path := filepath.Join(appsDir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				c.note(SeverityWarning, CodeManifestUnreadable, path, err, "cannot read Steam manifest")
				continue
			}

			title, ok := steamManifestTitle(data)
			if !ok {
				c.note(SeverityWarning, CodeManifestInvalid, path, nil, "Steam manifest has no name field")
				continue
			}

			id := strings.TrimSuffix(strings.TrimPrefix(name, steamManifestPrefix), steamManifestSuffix)

			image := ""
			if cover := filepath.Join(coverDir, id+"_library_600x900.jpg"); pathExists(cover) {
				image = cover
			}

			c.add(game.Record{
				ID:         id,
				Title:      title,
				Platform:   game.PlatformSteam,
				ImagePath:  image,
				InstallDir: lib,
			})
		}
	}

	return c.result()
}

// steamManifestTitle extracts the value of the first line mentioning
// "name". The line is split on quotes and the fourth token taken, which is
// the value in `"name"		"Portal 2"`. A name line with too few tokens yields
// the placeholder title; no name line at all reports false.
func steamManifestTitle(data []byte) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, `"name"`) {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) > 3 {
			return parts[3], true
		}
		return steamPlaceholderTitle, true
	}
	return "", false
}
