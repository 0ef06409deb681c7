// SPDX-License-Identifier: MPL-2.0

package game

import (
	"errors"
	"fmt"
	"strings"
)

// keySeparator joins platform and id in the persisted key form. Platform
// names never contain it, so splitting at its first occurrence is lossless
// even when the id does.
const keySeparator = "-"

// ErrInvalidKey is the sentinel error wrapped by InvalidKeyError.
var ErrInvalidKey = errors.New("invalid game key")

type (
	// Key is the composite identity of a game record. Two records with equal
	// keys are the same game regardless of any other field.
	Key struct {
		Platform Platform
		ID       string
	}

	// InvalidKeyError is returned when a persisted key string cannot be parsed.
	InvalidKeyError struct {
		Value string
		Cause error
	}
)

// NewKey builds a Key from its parts.
func NewKey(platform Platform, id string) Key {
	return Key{Platform: platform, ID: id}
}

// ParseKey parses the persisted "Platform-ID" form.
func ParseKey(s string) (Key, error) {
	name, id, ok := strings.Cut(s, keySeparator)
	if !ok || id == "" {
		return Key{}, &InvalidKeyError{Value: s}
	}
	p := Platform(name)
	if valid, errs := p.IsValid(); !valid {
		return Key{}, &InvalidKeyError{Value: s, Cause: errs[0]}
	}
	return Key{Platform: p, ID: id}, nil
}

// String renders the persisted "Platform-ID" form.
func (k Key) String() string {
	return string(k.Platform) + keySeparator + k.ID
}

// MarshalText implements encoding.TextMarshaler so keys can be used directly
// in JSON documents and as map keys.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Error implements the error interface for InvalidKeyError.
func (e *InvalidKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid game key %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid game key %q: want <platform>-<id>", e.Value)
}

// Unwrap returns ErrInvalidKey for errors.Is() compatibility.
func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }
