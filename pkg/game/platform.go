// SPDX-License-Identifier: MPL-2.0

package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// PlatformSteam identifies games installed through Steam.
	PlatformSteam Platform = "Steam"
	// PlatformGOG identifies games installed through GOG Galaxy.
	PlatformGOG Platform = "GOG"
	// PlatformEpic identifies games installed through the Epic Games Launcher.
	PlatformEpic Platform = "Epic"
	// PlatformEA identifies games installed through the EA app.
	PlatformEA Platform = "EA"
	// PlatformUbisoft identifies games installed through Ubisoft Connect.
	PlatformUbisoft Platform = "Ubisoft"
	// PlatformCustom identifies games added by hand.
	PlatformCustom Platform = "Custom"
)

// ErrInvalidPlatform is the sentinel error wrapped by InvalidPlatformError.
var ErrInvalidPlatform = errors.New("invalid platform")

type (
	// Platform is the origin system of a game record.
	Platform string

	// InvalidPlatformError is returned when a Platform value is not recognized.
	// It wraps ErrInvalidPlatform for errors.Is() compatibility.
	InvalidPlatformError struct {
		Value Platform
	}
)

// Platforms returns every known platform in discovery order, Custom last.
func Platforms() []Platform {
	return []Platform{PlatformSteam, PlatformEpic, PlatformGOG, PlatformEA, PlatformUbisoft, PlatformCustom}
}

// ParsePlatform resolves a platform name case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range Platforms() {
		if strings.EqualFold(string(p), trimmed) {
			return p, nil
		}
	}
	return "", &InvalidPlatformError{Value: Platform(s)}
}

// String returns the string representation of the Platform.
func (p Platform) String() string { return string(p) }

// IsValid returns whether the Platform is one of the defined platforms,
// and a list of validation errors if it is not.
func (p Platform) IsValid() (bool, []error) {
	switch p {
	case PlatformSteam, PlatformGOG, PlatformEpic, PlatformEA, PlatformUbisoft, PlatformCustom:
		return true, nil
	default:
		return false, []error{&InvalidPlatformError{Value: p}}
	}
}

// Error implements the error interface for InvalidPlatformError.
func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("invalid platform %q (valid: Steam, GOG, Epic, EA, Ubisoft, Custom)", e.Value)
}

// Unwrap returns ErrInvalidPlatform for errors.Is() compatibility.
func (e *InvalidPlatformError) Unwrap() error { return ErrInvalidPlatform }
