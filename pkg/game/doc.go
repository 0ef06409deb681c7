// SPDX-License-Identifier: MPL-2.0

// Package game defines the records shared by every catalog component: the
// closed set of origin platforms, the composite (platform, id) identity key,
// and the game record itself.
package game
