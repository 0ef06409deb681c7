// SPDX-License-Identifier: MPL-2.0

package game

type (
	// Record is one discovered or user-added game.
	Record struct {
		// ID is the platform-scoped identifier (opaque).
		ID string `json:"id" toml:"id"`
		// Title is the display name.
		Title string `json:"title" toml:"title"`
		// Platform is the origin system.
		Platform Platform `json:"platform" toml:"platform"`
		// ImagePath is a local cover image; empty means unknown.
		ImagePath string `json:"imagePath" toml:"image_path,omitempty"`
		// ExePath is the executable (or, for EA, the directory to search at launch).
		ExePath string `json:"exePath" toml:"exe_path,omitempty"`
		// InstallDir is where the game lives on disk; empty means unknown location.
		InstallDir string `json:"installDir" toml:"install_dir,omitempty"`
		// IsFavorite is derived from the overlay favorites on every catalog
		// build and is never persisted with the record.
		IsFavorite bool `json:"isFavorite,omitempty" toml:"favorite,omitempty"`
	}
)

// Key returns the composite identity of the record.
func (r Record) Key() Key {
	return Key{Platform: r.Platform, ID: r.ID}
}

// IsCustom reports whether the record was added by hand.
func (r Record) IsCustom() bool {
	return r.Platform == PlatformCustom
}
