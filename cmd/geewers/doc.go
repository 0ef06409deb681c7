// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for geewers.
//
// This package implements the Cobra command hierarchy for the geewers CLI:
// catalog listing and inspection, favorites and custom games, settings,
// launching, library watching and configuration management.
package cmd
