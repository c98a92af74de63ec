// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/outputview.go
// Summary: Read-only viewport for highlighted output and error blocks.

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/jsonpane/highlight"
	"github.com/framegrace/jsonpane/jsonfmt"
)

// Placeholder is shown when there is no input to format.
const Placeholder = "Paste or type JSON to see it formatted here."

// ErrorLabel heads the error block for invalid input.
const ErrorLabel = "JSON Parse Error:"

type outputMode int

const (
	outputIdle outputMode = iota
	outputContent
	outputError
)

// OutputView renders the formatted/highlighted text, the idle
// placeholder, or an error block. It scrolls but never edits.
type OutputView struct {
	theme *highlight.Theme

	mode  outputMode
	lines []highlight.Line
	err   *jsonfmt.ParseError

	offX, offY int
	x, y, w, h int
}

// NewOutputView returns an idle view styled by theme.
func NewOutputView(theme *highlight.Theme) *OutputView {
	return &OutputView{theme: theme}
}

// SetTheme swaps the style table used for drawing. Content is kept; the
// next Draw renders it in the new theme.
func (o *OutputView) SetTheme(theme *highlight.Theme) {
	o.theme = theme
}

// SetRect positions the widget.
func (o *OutputView) SetRect(x, y, w, h int) {
	o.x, o.y, o.w, o.h = x, y, w, h
	o.clampScroll()
}

// ShowContent replaces the view with highlighted lines.
func (o *OutputView) ShowContent(lines []highlight.Line) {
	o.mode = outputContent
	o.lines = lines
	o.err = nil
	o.offX, o.offY = 0, 0
}

// ShowError replaces the view with an error block.
func (o *OutputView) ShowError(err *jsonfmt.ParseError) {
	o.mode = outputError
	o.err = err
	o.lines = nil
	o.offX, o.offY = 0, 0
}

// ShowIdle resets the view to the placeholder.
func (o *OutputView) ShowIdle() {
	o.mode = outputIdle
	o.lines = nil
	o.err = nil
	o.offX, o.offY = 0, 0
}

// HandleKey scrolls the viewport. Returns false for keys it ignores.
func (o *OutputView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		o.offY--
	case tcell.KeyDown:
		o.offY++
	case tcell.KeyLeft:
		o.offX--
	case tcell.KeyRight:
		o.offX++
	case tcell.KeyPgUp:
		o.offY -= o.h
	case tcell.KeyPgDn:
		o.offY += o.h
	case tcell.KeyHome:
		o.offX, o.offY = 0, 0
	case tcell.KeyEnd:
		o.offY = len(o.lines) - o.h
	default:
		return false
	}
	o.clampScroll()
	return true
}

func (o *OutputView) clampScroll() {
	maxY := len(o.lines) - o.h
	if maxY < 0 {
		maxY = 0
	}
	if o.offY > maxY {
		o.offY = maxY
	}
	if o.offY < 0 {
		o.offY = 0
	}
	if o.offX < 0 {
		o.offX = 0
	}
}

// Draw renders the current state into the viewport rectangle.
func (o *OutputView) Draw(d ScreenDriver) {
	o.fill(d)
	switch o.mode {
	case outputIdle:
		o.drawText(d, 0, 0, Placeholder, o.theme.Base().Dim(true))
	case outputContent:
		o.drawContent(d)
	case outputError:
		o.drawError(d)
	}
}

func (o *OutputView) fill(d ScreenDriver) {
	for row := 0; row < o.h; row++ {
		for col := 0; col < o.w; col++ {
			d.SetContent(o.x+col, o.y+row, ' ', nil, o.theme.Base())
		}
	}
}

func (o *OutputView) drawContent(d ScreenDriver) {
	for row := 0; row < o.h; row++ {
		ly := o.offY + row
		if ly >= len(o.lines) {
			break
		}
		col := -o.offX
		for _, seg := range o.lines[ly] {
			style := o.theme.Style(seg.Class)
			for _, r := range seg.Text {
				rw := runewidth.RuneWidth(r)
				if col >= o.w {
					break
				}
				if col >= 0 {
					d.SetContent(o.x+col, o.y+row, r, nil, style)
				}
				col += rw
			}
		}
	}
}

func (o *OutputView) drawError(d ScreenDriver) {
	errStyle := o.theme.Base().Foreground(tcell.ColorIndianRed)
	o.drawText(d, 0, 0, ErrorLabel, errStyle.Bold(true))
	if o.err == nil {
		return
	}
	row := 1
	for _, line := range wrapText(o.err.Message, o.w) {
		if row >= o.h {
			return
		}
		o.drawText(d, 0, row, line, errStyle)
		row++
	}
	if o.err.HasPosition() && row < o.h {
		pos := fmt.Sprintf("Line %d, Column %d", o.err.Line, o.err.Column)
		o.drawText(d, 0, row, pos, o.theme.Base().Dim(true))
	}
}

func (o *OutputView) drawText(d ScreenDriver, col, row int, text string, style tcell.Style) {
	for _, r := range text {
		if col >= o.w {
			return
		}
		d.SetContent(o.x+col, o.y+row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// wrapText hard-wraps text at width runes. Width guards against a zero
// viewport during startup.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var out []string
	runes := []rune(text)
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	return append(out, string(runes))
}
