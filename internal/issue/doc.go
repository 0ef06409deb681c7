// SPDX-License-Identifier: MPL-2.0

// Package issue holds the error types the geewers CLI shows to people.
//
// ActionableError names the operation that failed (finding a game, adding a
// custom game, loading configuration) and carries hints for fixing it.
// The Issue catalog maps an Id to longer Markdown guidance rendered with
// glamour after the error line.
package issue
