// SPDX-License-Identifier: MPL-2.0

package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// coverKeywords are substrings that mark a file name as cover-like.
	coverKeywords = []string{"cover", "banner", "poster", "splash", "header", "logo", "background", "boxart"}
	// coverExtensions are the accepted image extensions, without the dot.
	coverExtensions = []string{"jpg", "png", "jpeg", "webp"}
)

// ScavengeImage looks for a cover-like image directly inside dir (no
// recursion) and returns its path, or "" when there is none.
//
// The first match in directory enumeration order wins. That order is the one
// os.ReadDir produces; no attempt is made to rank candidates, so a dir with
// both "logo.png" and "cover.jpg" yields whichever is listed first.
func ScavengeImage(dir string) string {
	if dir == "" {
		return ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == "" || ext == name {
			continue
		}
		if !slices.Contains(coverExtensions, strings.ToLower(ext[1:])) {
			continue
		}
		stem := strings.ToLower(strings.TrimSuffix(name, ext))
		if !slices.ContainsFunc(coverKeywords, func(k string) bool { return strings.Contains(stem, k) }) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return path
	}
	return ""
}
