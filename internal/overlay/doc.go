// SPDX-License-Identifier: MPL-2.0

// Package overlay owns the user's persistent state layered over the scanned
// catalog: favorites, custom games, the drive selection and the UI theme.
//
// A single Store holds the state in memory and rewrites the JSON data file
// after every mutation. Other components only ever see deep-copied
// snapshots.
package overlay
