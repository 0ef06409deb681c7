// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// libraryFoldersFile is the descriptor Steam keeps for additional library
// folders, relative to the Steam root.
const libraryFoldersFile = "libraryfolders.vdf"

// libraryPathPattern matches `"path"  "<value>"` pairs, allowing escaped
// characters inside the value. The descriptor is only pattern-matched, never
// fully parsed, so unrelated malformed lines are ignored.
var libraryPathPattern = regexp.MustCompile(`"path"\s+"((?:[^"\\]|\\.)+)"`)

// SteamLibraryFolders returns the library roots for a Steam installation.
// The primary root is always first, followed by each additional folder from
// steamapps/libraryfolders.vdf in file order. A folder is appended only if it
// exists and is not already listed (see libraryKey).
func SteamLibraryFolders(root string) []string {
	folders := []string{root}
	seen := map[string]struct{}{libraryKey(root): {}}

	data, err := os.ReadFile(filepath.Join(root, "steamapps", libraryFoldersFile))
	if err != nil {
		return folders
	}

	for _, m := range libraryPathPattern.FindAllStringSubmatch(string(data), -1) {
		p := strings.ReplaceAll(m[1], `\\`, `\`)
		key := libraryKey(p)
		if _, dup := seen[key]; dup {
			continue
		}
		if !pathExists(p) {
			continue
		}
		seen[key] = struct{}{}
		folders = append(folders, p)
	}

	return folders
}

// libraryKey folds a library path for duplicate detection: separators are
// unified to '/', case is ignored and trailing separators are dropped.
func libraryKey(p string) string {
	k := strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
	if t := strings.TrimRight(k, "/"); t != "" {
		k = t
	}
	return k
}
