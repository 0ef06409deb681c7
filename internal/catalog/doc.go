// SPDX-License-Identifier: MPL-2.0

// Package catalog assembles the unified game catalog from scanner output and
// the user overlay: drive filtering, de-duplication, favorite marking and
// title ordering.
package catalog
