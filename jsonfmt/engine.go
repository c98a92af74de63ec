// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: jsonfmt/engine.go
// Summary: Formatting engine: parse, serialize, highlight, summarize.

package jsonfmt

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/framegrace/jsonpane/highlight"
)

// Mode selects the serialization of a formatting pass.
type Mode int

const (
	ModePretty Mode = iota
	ModeMinify
)

// Kind tags the variant of a Result.
type Kind int

const (
	// KindEmpty means the trimmed input was empty. Not an error; callers
	// reset to the idle display state.
	KindEmpty Kind = iota
	KindSuccess
	KindFailure
)

// Result is the outcome of one formatting cycle. Exactly one variant is
// populated: Text/Markup/Lines/Stats/Compact for KindSuccess, Err for
// KindFailure, nothing for KindEmpty.
type Result struct {
	Kind Kind

	// Text is the rendered JSON, pretty or compact per the requested Mode.
	Text string
	// Markup is Text with highlight spans and escaped markup characters.
	Markup string
	// Lines are per-line styled segments of Text for cell rendering.
	Lines []highlight.Line
	// Compact is the unformatted serialization Stats.Bytes refers to.
	Compact string
	Stats   Stats

	Err *ParseError
}

// Engine runs the validation/formatting/highlighting pipeline. It holds
// no per-call state; the caller owns the input for the duration of one
// Format call.
type Engine struct {
	hl     *highlight.Highlighter
	indent string
}

// NewEngine returns an Engine indenting pretty output by indentWidth
// spaces (2 when indentWidth is not positive).
func NewEngine(hl *highlight.Highlighter, indentWidth int) *Engine {
	if indentWidth <= 0 {
		indentWidth = 2
	}
	return &Engine{hl: hl, indent: strings.Repeat(" ", indentWidth)}
}

// Format runs one full cycle on rawInput. Whitespace-only input yields
// KindEmpty. Invalid JSON yields KindFailure with the decoder's message
// and, when an offset was reported, a 1-based line/column pair. Valid
// JSON yields KindSuccess with rendered text, markup, and stats.
func (e *Engine) Format(rawInput string, mode Mode) Result {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return Result{Kind: KindEmpty}
	}

	v, perr := Parse(trimmed)
	if perr != nil {
		if perr.HasPosition() {
			perr.Line, perr.Column = LineColumn(trimmed, int(perr.Offset))
		}
		return Result{Kind: KindFailure, Err: perr}
	}

	compact, err := serialize(v, "")
	if err != nil {
		// Decoded values always re-encode; guard anyway.
		return Result{Kind: KindFailure, Err: &ParseError{Message: err.Error(), Offset: -1}}
	}
	text := compact
	if mode == ModePretty {
		if text, err = serialize(v, e.indent); err != nil {
			return Result{Kind: KindFailure, Err: &ParseError{Message: err.Error(), Offset: -1}}
		}
	}

	return Result{
		Kind:    KindSuccess,
		Text:    text,
		Markup:  e.hl.Markup(text),
		Lines:   e.hl.Lines(text),
		Compact: compact,
		Stats:   Summarize(v, compact),
	}
}

// serialize re-encodes a decoded value without HTML escaping, so the
// rendered text stays byte-faithful to what the user typed (modulo
// formatting). Escaping for markup happens in the highlighter.
func serialize(v interface{}, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
