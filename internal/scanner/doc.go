// SPDX-License-Identifier: MPL-2.0

// Package scanner discovers installed games on the host, one Scanner per
// launcher platform.
//
// Scanners never fail. A missing registry key, directory or manifest skips
// that sub-source and is reported as a Diagnostic next to whatever records
// the scanner did find, so callers decide how loudly to surface it.
//
// File organization:
//   - scanner.go: Scanner interface, Result, shared helpers
//   - diagnostic.go: Diagnostic types and codes
//   - steam_library.go: Steam library-folder resolution (libraryfolders.vdf)
//   - scavenge.go: local cover-image heuristic
//   - steam.go, gog.go, epic.go, ea.go, ubisoft.go: per-platform scanners
package scanner
