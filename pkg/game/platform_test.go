// SPDX-License-Identifier: MPL-2.0

package game

import (
	"errors"
	"testing"
)

func TestPlatform_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		platform Platform
		want     bool
	}{
		{PlatformSteam, true},
		{PlatformGOG, true},
		{PlatformEpic, true},
		{PlatformEA, true},
		{PlatformUbisoft, true},
		{PlatformCustom, true},
		{"", false},
		{"steam", false},
		{"Origin", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.platform.IsValid()
			if isValid != tt.want {
				t.Errorf("Platform(%q).IsValid() = %v, want %v", tt.platform, isValid, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatalf("Platform(%q).IsValid() returned no errors, want error", tt.platform)
				}
				if !errors.Is(errs[0], ErrInvalidPlatform) {
					t.Errorf("error should wrap ErrInvalidPlatform, got: %v", errs[0])
				}
			}
		})
	}
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	got, err := ParsePlatform(" steam ")
	if err != nil {
		t.Fatalf("ParsePlatform() error: %v", err)
	}
	if got != PlatformSteam {
		t.Errorf("ParsePlatform() = %q, want %q", got, PlatformSteam)
	}

	if _, err := ParsePlatform("battle.net"); !errors.Is(err, ErrInvalidPlatform) {
		t.Errorf("ParsePlatform(battle.net) error = %v, want ErrInvalidPlatform", err)
	}
}
