// SPDX-License-Identifier: MPL-2.0

package scanner

import "github.com/geewers/geewers/pkg/game"

const (
	// SeverityInfo marks an expected absence (e.g., launcher not installed).
	SeverityInfo Severity = "info"
	// SeverityWarning marks a recoverable problem with one sub-source.
	SeverityWarning Severity = "warning"

	// CodeSourceUnavailable means a registry root or directory is absent.
	CodeSourceUnavailable = "source_unavailable"
	// CodeManifestUnreadable means a manifest file could not be read.
	CodeManifestUnreadable = "manifest_unreadable"
	// CodeManifestInvalid means a manifest was read but could not be parsed.
	CodeManifestInvalid = "manifest_invalid"
	// CodeEntrySkipped means a single entry lacked a required field.
	CodeEntrySkipped = "entry_skipped"
	// CodeScanCanceled means the context was canceled mid-scan.
	CodeScanCanceled = "scan_canceled"
)

type (
	// Severity represents diagnostic severity.
	Severity string

	// Diagnostic is a structured, non-fatal scan notice returned to callers
	// rather than written to stderr.
	Diagnostic struct {
		// Platform is the scanner that produced the notice.
		Platform game.Platform
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "manifest_invalid").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file, directory or registry key involved (optional).
		Path string
		// Cause is the underlying error (optional).
		Cause error
	}
)
