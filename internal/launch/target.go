// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/geewers/geewers/pkg/game"
)

const (
	// KindNone means nothing can be opened for the entry.
	KindNone Kind = iota
	// KindURI is a launcher protocol URI.
	KindURI
	// KindPath is a local file or directory.
	KindPath
)

type (
	// Kind classifies a Target.
	Kind int

	// Target is what gets handed to the OS opener.
	Target struct {
		Kind  Kind
		Value string
	}
)

func (k Kind) String() string {
	switch k {
	case KindURI:
		return "uri"
	case KindPath:
		return "path"
	default:
		return "none"
	}
}

// IsZero reports whether t has nothing to open.
func (t Target) IsZero() bool {
	return t.Kind == KindNone || t.Value == ""
}

func uri(v string) Target  { return Target{Kind: KindURI, Value: v} }
func path(v string) Target { return Target{Kind: KindPath, Value: v} }

// Resolve returns the launch target for a game. Launcher-managed platforms
// resolve to protocol URIs; EA resolves to an executable found in exePath;
// custom games open exePath directly.
func Resolve(platform game.Platform, id, exePath string) Target {
	switch platform {
	case game.PlatformSteam:
		return uri("steam://run/" + id)
	case game.PlatformEpic:
		return uri("com.epicgames.launcher://apps/" + id + "?action=launch&silent=true")
	case game.PlatformUbisoft:
		return uri("uplay://launch/" + id + "/0")
	case game.PlatformGOG:
		return uri("goggalaxy://openGameView/" + id)
	case game.PlatformEA:
		if exe := FindExecutable(exePath); exe != "" {
			return path(exe)
		}
		return path(exePath)
	case game.PlatformCustom:
		return path(exePath)
	default:
		return Target{}
	}
}

// ResolveLauncherPage returns the target showing the game (or the owning
// launcher's library) in its launcher. For custom games id is opened as is.
func ResolveLauncherPage(platform game.Platform, id string) Target {
	switch platform {
	case game.PlatformSteam:
		return uri("steam://nav/games/details/" + id)
	case game.PlatformGOG:
		return uri("goggalaxy://openGameView/" + id)
	case game.PlatformEpic:
		return uri("com.epicgames.launcher://library")
	case game.PlatformUbisoft:
		return uri("uplay://")
	case game.PlatformEA:
		return uri("origin2://library")
	case game.PlatformCustom:
		return path(id)
	default:
		return Target{}
	}
}

// excludedExeMarkers mark helper executables EA installs next to the game.
var excludedExeMarkers = []string{"Cleanup", "Touchup"}

// FindExecutable returns the first .exe directly inside dir whose path
// contains none of the helper markers, or "" when there is none.
func FindExecutable(dir string) string {
	if dir == "" {
		return ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".exe") {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if containsAny(p, excludedExeMarkers) {
			continue
		}
		return p
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
