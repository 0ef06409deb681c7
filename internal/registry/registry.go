// SPDX-License-Identifier: MPL-2.0

// Package registry provides read-only access to the host configuration
// registry. Scanners depend on the Reader interface so they can run against
// the Windows registry in production and an in-memory tree everywhere else.
package registry

import (
	"errors"
	"fmt"
)

const (
	// LocalMachine is the machine-wide hive (HKEY_LOCAL_MACHINE).
	LocalMachine Root = iota + 1
	// CurrentUser is the per-user hive (HKEY_CURRENT_USER).
	CurrentUser
)

var (
	// ErrNotExist is returned when a key or value is absent.
	ErrNotExist = errors.New("registry key or value does not exist")
	// ErrUnsupported is returned by the system reader on hosts without a registry.
	ErrUnsupported = errors.New("registry not supported on this platform")
)

type (
	// Root identifies a registry hive.
	Root int

	// Reader is read-only registry access. Implementations must be safe for
	// concurrent use because scanners run in parallel.
	Reader interface {
		// SubKeys lists the immediate subkey names of path.
		SubKeys(root Root, path string) ([]string, error)
		// String reads a string value of the key at path.
		String(root Root, path, name string) (string, error)
	}

	// KeyError describes a failed registry lookup.
	KeyError struct {
		Root  Root
		Path  string
		Value string
		Err   error
	}
)

// String returns the conventional hive abbreviation.
func (r Root) String() string {
	switch r {
	case LocalMachine:
		return "HKLM"
	case CurrentUser:
		return "HKCU"
	default:
		return fmt.Sprintf("Root(%d)", int(r))
	}
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("registry %s\\%s [%s]: %v", e.Root, e.Path, e.Value, e.Err)
	}
	return fmt.Sprintf("registry %s\\%s: %v", e.Root, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *KeyError) Unwrap() error { return e.Err }

// StringOrEmpty reads a string value and returns "" when it cannot be read.
func StringOrEmpty(r Reader, root Root, path, name string) string {
	v, err := r.String(root, path, name)
	if err != nil {
		return ""
	}
	return v
}
