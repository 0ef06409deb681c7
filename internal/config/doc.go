// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/geewers/config.cue (or $XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/geewers/config.cue on macOS, %APPDATA%\geewers\config.cue
// on Windows), then overridden by GEEWERS_* environment variables. It selects the data
// directory, enables or relocates individual platform scanners and tunes the UI and watcher.
//
// Files are validated against an embedded CUE schema (config_schema.cue) so typos and
// wrong types surface with the offending field path.
package config
