// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/theme.go
// Summary: Maps highlight classes to tcell styles via a Chroma style.

package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// DefaultStyleName is the Chroma style used when none is configured.
const DefaultStyleName = "catppuccin-mocha"

// Theme resolves highlight classes to terminal cell styles.
type Theme struct {
	base    tcell.Style
	classes map[Class]tcell.Style
}

// NewTheme builds a Theme from a named Chroma style, falling back to the
// default style when the name is unknown.
func NewTheme(styleName string) *Theme {
	if styleName == "" {
		styleName = DefaultStyleName
	}
	style := styles.Get(styleName)

	base := tcell.StyleDefault
	if bg := style.Get(chroma.Background).Background; bg.IsSet() {
		base = base.Background(toTcell(bg))
	}
	if fg := style.Get(chroma.Text).Colour; fg.IsSet() {
		base = base.Foreground(toTcell(fg))
	}

	t := &Theme{base: base, classes: make(map[Class]tcell.Style)}
	for cls, tok := range map[Class]chroma.TokenType{
		ClassPlain:  chroma.Text,
		ClassKey:    chroma.NameTag,
		ClassString: chroma.LiteralStringDouble,
		ClassNumber: chroma.LiteralNumber,
		ClassBool:   chroma.KeywordConstant,
		ClassNull:   chroma.KeywordConstant,
		ClassPunct:  chroma.Punctuation,
	} {
		t.classes[cls] = entryStyle(style.Get(tok), base)
	}
	return t
}

// Base returns the theme's default text style.
func (t *Theme) Base() tcell.Style {
	return t.base
}

// Style returns the cell style for a highlight class.
func (t *Theme) Style(c Class) tcell.Style {
	if s, ok := t.classes[c]; ok {
		return s
	}
	return t.base
}

func entryStyle(entry chroma.StyleEntry, base tcell.Style) tcell.Style {
	s := base
	if entry.Colour.IsSet() {
		s = s.Foreground(toTcell(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

func toTcell(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
