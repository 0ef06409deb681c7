// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"strings"

	"github.com/geewers/geewers/pkg/game"
)

// FilterByDrives keeps the records installed under one of drives. An empty
// drive list keeps everything. Records with no install directory and custom
// games are always kept.
func FilterByDrives(records []game.Record, drives []string) []game.Record {
	if len(drives) == 0 {
		return records
	}

	prefixes := make([]string, 0, len(drives))
	for _, d := range drives {
		if d = normalizePath(d); d != "" {
			prefixes = append(prefixes, d)
		}
	}
	if len(prefixes) == 0 {
		return records
	}

	out := make([]game.Record, 0, len(records))
	for _, r := range records {
		if r.InstallDir == "" || r.IsCustom() || onAnyDrive(normalizePath(r.InstallDir), prefixes) {
			out = append(out, r)
		}
	}
	return out
}

// normalizePath folds separators to '/' and lower-cases, so `D:\Games` and
// `d:/games` compare equal.
func normalizePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p), `\`, "/"))
}

func onAnyDrive(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
