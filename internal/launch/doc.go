// SPDX-License-Identifier: MPL-2.0

// Package launch turns a catalog entry into something the desktop can open
// (a launcher URI or a local path) and hands it to the OS.
package launch
