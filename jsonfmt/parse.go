// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: jsonfmt/parse.go
// Summary: Strict JSON parsing with structured syntax errors.

package jsonfmt

import (
	"encoding/json"
	"errors"
)

// ParseError describes a syntax error in JSON input text.
//
// Message carries the decoder's native message verbatim. Offset is the
// zero-based byte offset at which the error was detected, or -1 when the
// decoder reported no position. Line and Column are 1-based and populated
// from Offset by the engine.
type ParseError struct {
	Message string
	Offset  int64
	Line    int
	Column  int
}

func (e *ParseError) Error() string { return e.Message }

// HasPosition reports whether the decoder attached a usable offset.
func (e *ParseError) HasPosition() bool { return e.Offset >= 0 }

// Parse decodes text as strictly standard JSON and returns the decoded
// value: map[string]interface{}, []interface{}, string, float64, bool, or
// nil for null. Callers short-circuit empty input before invoking Parse.
func Parse(text string) (interface{}, *ParseError) {
	var v interface{}
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		return v, nil
	}

	perr := &ParseError{Message: err.Error(), Offset: -1}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		// SyntaxError.Offset counts the bytes read when the error was hit;
		// back up one to land on the offending byte.
		off := syn.Offset - 1
		if off < 0 {
			off = 0
		}
		perr.Offset = off
	}
	return nil, perr
}
