// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"slices"
	"strings"

	"github.com/geewers/geewers/pkg/game"
)

// Merge concatenates discovered and custom records, keeps the first record
// seen for each key, marks favorites and sorts by case-insensitive title.
// Ties keep their concatenation order.
func Merge(discovered, custom []game.Record, favorites map[game.Key]struct{}) []game.Record {
	out := make([]game.Record, 0, len(discovered)+len(custom))
	seen := make(map[game.Key]struct{}, cap(out))

	for _, r := range slices.Concat(discovered, custom) {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		_, r.IsFavorite = favorites[k]
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b game.Record) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
	return out
}
