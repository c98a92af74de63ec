// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: jsonfmt/stats.go
// Summary: Size and shape metrics for parsed JSON values.

package jsonfmt

import "fmt"

// Stats describes a successfully parsed value.
type Stats struct {
	// Shape is "<n> items" for arrays, "<n> properties" for objects, and
	// empty for scalar values.
	Shape string
	// Bytes is the UTF-8 byte length of the compact serialization.
	Bytes int
}

// Summarize computes Stats for a parsed value and its compact form.
func Summarize(v interface{}, compact string) Stats {
	st := Stats{Bytes: len(compact)}
	switch t := v.(type) {
	case []interface{}:
		st.Shape = fmt.Sprintf("%d items", len(t))
	case map[string]interface{}:
		st.Shape = fmt.Sprintf("%d properties", len(t))
	}
	return st
}

// HumanSize renders Bytes as "<n> bytes" up to 1024 bytes, then as KB
// rounded to one decimal.
func (s Stats) HumanSize() string {
	if s.Bytes <= 1024 {
		return fmt.Sprintf("%d bytes", s.Bytes)
	}
	return fmt.Sprintf("%.1f KB", float64(s.Bytes)/1024)
}

// String combines shape and size for status display.
func (s Stats) String() string {
	if s.Shape == "" {
		return s.HumanSize()
	}
	return s.Shape + ", " + s.HumanSize()
}
