// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/statusbar.go
// Summary: Severity-colored status indicator line.

package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/jsonpane/jsonfmt"
)

// StatusBar renders one status indicator with severity coloring.
type StatusBar struct {
	base tcell.Style
}

// NewStatusBar returns a bar drawn over the given base style.
func NewStatusBar(base tcell.Style) *StatusBar {
	return &StatusBar{base: base}
}

// SetBase swaps the style the severity colors layer over.
func (b *StatusBar) SetBase(base tcell.Style) {
	b.base = base
}

func (b *StatusBar) styleFor(sev jsonfmt.Severity) tcell.Style {
	switch sev {
	case jsonfmt.SeveritySuccess:
		return b.base.Foreground(tcell.ColorMediumSeaGreen)
	case jsonfmt.SeverityError:
		return b.base.Foreground(tcell.ColorIndianRed)
	case jsonfmt.SeverityWarning:
		return b.base.Foreground(tcell.ColorGoldenrod)
	}
	return b.base.Dim(true)
}

// Draw renders the status into a single row of width w.
func (b *StatusBar) Draw(d ScreenDriver, x, y, w int, st jsonfmt.Status) {
	style := b.styleFor(st.Severity)
	col := 0
	for _, r := range st.Text {
		if col >= w {
			break
		}
		d.SetContent(x+col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < w; col++ {
		d.SetContent(x+col, y, ' ', nil, b.base)
	}
}
