// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE validation helpers.
//
// User files are compiled, unified with a definition from an embedded
// schema and validated; failures are reported with JSON-path style field
// locations:
//
//	//go:embed config_schema.cue
//	var schema string
//
//	v, err := cueutil.Validate(schema, "#Config", data, "config.cue")
//	if err != nil {
//	    return err // config.cue: ui.color_scheme: 2 errors in empty disjunction
//	}
package cueutil
