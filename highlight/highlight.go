// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: JSON syntax highlighting via Chroma tokenization.
//
// Produces two views of the same tokenization: an escaped markup string
// (spans tagged by class) and per-line styled segments for cell rendering.

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Class identifies the visual role of a highlighted span.
type Class int

const (
	ClassPlain Class = iota
	ClassKey
	ClassString
	ClassNumber
	ClassBool
	ClassNull
	ClassPunct
)

// Name returns the markup class attribute for a Class.
func (c Class) Name() string {
	switch c {
	case ClassKey:
		return "json-key"
	case ClassString:
		return "json-string"
	case ClassNumber:
		return "json-number"
	case ClassBool:
		return "json-boolean"
	case ClassNull:
		return "json-null"
	case ClassPunct:
		return "json-punct"
	}
	return ""
}

// Segment is a run of text within one line sharing a class. Segments are
// non-overlapping and ordered; text between classified segments renders
// plain.
type Segment struct {
	Text  string
	Class Class
}

// Line is the styled decomposition of one line of rendered JSON.
type Line []Segment

// Highlighter tokenizes valid JSON text. It is safe for reuse but not for
// concurrent use; jsonpane only highlights from one formatting pass at a
// time.
type Highlighter struct {
	lexer chroma.Lexer
}

// New returns a Highlighter backed by Chroma's JSON lexer.
func New() *Highlighter {
	return &Highlighter{lexer: chroma.Coalesce(lexers.Get("json"))}
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape rewrites the three markup-sensitive characters to entity form.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Markup returns jsonText with every classified token wrapped in a
// <span class="..."> tag. Token text is escaped before tagging, so the
// output never contains an unescaped '&', '<', or '>' from the input.
// jsonText must already be valid JSON; on a lexer failure the escaped
// text is returned untagged.
func (h *Highlighter) Markup(jsonText string) string {
	tokens, err := chroma.Tokenise(h.lexer, nil, jsonText)
	if err != nil {
		return Escape(jsonText)
	}

	var sb strings.Builder
	sb.Grow(len(jsonText) + len(jsonText)/2)
	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}
		text := Escape(tok.Value)
		cls := classify(tok)
		if cls == ClassPlain {
			sb.WriteString(text)
			continue
		}
		sb.WriteString(`<span class="`)
		sb.WriteString(cls.Name())
		sb.WriteString(`">`)
		sb.WriteString(text)
		sb.WriteString(`</span>`)
	}
	return sb.String()
}

// Lines splits jsonText into per-line segments. A token spanning a
// newline is cut at the line boundary. The result always has one Line per
// text line, including empty ones.
func (h *Highlighter) Lines(jsonText string) []Line {
	tokens, err := chroma.Tokenise(h.lexer, nil, jsonText)
	if err != nil {
		return plainLines(jsonText)
	}

	lines := []Line{nil}
	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}
		cls := classify(tok)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			cur := len(lines) - 1
			lines[cur] = append(lines[cur], Segment{Text: part, Class: cls})
		}
	}
	return lines
}

func plainLines(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		if l != "" {
			lines[i] = Line{{Text: l}}
		}
	}
	return lines
}

// classify maps a Chroma token to a highlight class. Chroma's JSON lexer
// emits NameTag for object keys, so key/value disambiguation is already
// position-determined by a real tokenizer rather than substitution passes.
func classify(tok chroma.Token) Class {
	switch {
	case tok.Type == chroma.NameTag:
		return ClassKey
	case tok.Type.InSubCategory(chroma.LiteralString):
		return ClassString
	case tok.Type.InSubCategory(chroma.LiteralNumber):
		return ClassNumber
	case tok.Type == chroma.KeywordConstant:
		if tok.Value == "null" {
			return ClassNull
		}
		return ClassBool
	case tok.Type == chroma.Punctuation:
		return ClassPunct
	}
	return ClassPlain
}
