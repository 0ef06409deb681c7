// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"cmp"
	"slices"
	"strings"

	"github.com/geewers/geewers/pkg/game"
)

const (
	// DefaultAccent is the default accent color.
	DefaultAccent = "#5865F2"
	// DefaultBgFrom is the default background gradient start.
	DefaultBgFrom = "#36393f"
	// DefaultBgTo is the default background gradient end.
	DefaultBgTo = "#2f3136"
	// DefaultCardBg is the default card background.
	DefaultCardBg = "#40444b"
	// DefaultTextPrimary is the default primary text color.
	DefaultTextPrimary = "#dcddde"
)

type (
	// Theme is the UI color palette. Values are opaque to the engine.
	Theme struct {
		Accent      string `json:"accent" toml:"accent"`
		BgFrom      string `json:"bgFrom" toml:"bg_from"`
		BgTo        string `json:"bgTo" toml:"bg_to"`
		CardBg      string `json:"cardBg" toml:"card_bg"`
		TextPrimary string `json:"textPrimary" toml:"text_primary"`
	}

	// Settings is the user-adjustable part of State.
	Settings struct {
		Theme          Theme    `json:"theme" toml:"theme"`
		SelectedDrives []string `json:"selectedDrives" toml:"selected_drives"`
	}

	// State is the complete overlay.
	State struct {
		// Favorites is the set of favorited game keys.
		Favorites map[game.Key]struct{}
		// CustomGames are user-added records, in insertion order.
		CustomGames []game.Record
		// SelectedDrives are storage-root prefixes restricting the catalog.
		// Empty means no restriction.
		SelectedDrives []string
		Theme          Theme
	}
)

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:      DefaultAccent,
		BgFrom:      DefaultBgFrom,
		BgTo:        DefaultBgTo,
		CardBg:      DefaultCardBg,
		TextPrimary: DefaultTextPrimary,
	}
}

// WithDefaults returns t with every empty field replaced by its default.
func (t Theme) WithDefaults() Theme {
	d := DefaultTheme()
	return Theme{
		Accent:      cmp.Or(t.Accent, d.Accent),
		BgFrom:      cmp.Or(t.BgFrom, d.BgFrom),
		BgTo:        cmp.Or(t.BgTo, d.BgTo),
		CardBg:      cmp.Or(t.CardBg, d.CardBg),
		TextPrimary: cmp.Or(t.TextPrimary, d.TextPrimary),
	}
}

// NewState returns the empty first-run state.
func NewState() State {
	return State{
		Favorites: make(map[game.Key]struct{}),
		Theme:     DefaultTheme(),
	}
}

// IsFavorite reports whether k is in the favorite set.
func (s State) IsFavorite(k game.Key) bool {
	_, ok := s.Favorites[k]
	return ok
}

// FavoriteKeys returns the favorite set in a stable order.
func (s State) FavoriteKeys() []game.Key {
	keys := make([]game.Key, 0, len(s.Favorites))
	for k := range s.Favorites {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b game.Key) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

// Settings returns the theme and drive selection.
func (s State) Settings() Settings {
	return Settings{Theme: s.Theme, SelectedDrives: slices.Clone(s.SelectedDrives)}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	fav := make(map[game.Key]struct{}, len(s.Favorites))
	for k := range s.Favorites {
		fav[k] = struct{}{}
	}
	return State{
		Favorites:      fav,
		CustomGames:    slices.Clone(s.CustomGames),
		SelectedDrives: slices.Clone(s.SelectedDrives),
		Theme:          s.Theme,
	}
}

// NormalizeDrives drops empty entries and duplicates, keeping first-seen
// order.
func NormalizeDrives(drives []string) []string {
	out := make([]string, 0, len(drives))
	for _, d := range drives {
		d = strings.TrimSpace(d)
		if d == "" || slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
	}
	return out
}
