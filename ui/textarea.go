// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/textarea.go
// Summary: Multiline input editor widget with viewport.

package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextArea is a minimal multiline text editor with viewport.
type TextArea struct {
	Lines  []string
	CaretX int
	CaretY int
	OffX   int
	OffY   int
	Style  tcell.Style

	x, y, w, h int
}

// NewTextArea returns an empty editor drawn with the given style.
func NewTextArea(style tcell.Style) *TextArea {
	return &TextArea{Lines: []string{""}, Style: style}
}

// SetRect positions the widget.
func (t *TextArea) SetRect(x, y, w, h int) {
	t.x, t.y, t.w, t.h = x, y, w, h
	t.ensureVisible()
}

// Text returns the full buffer contents.
func (t *TextArea) Text() string {
	return strings.Join(t.Lines, "\n")
}

// SetText replaces the buffer and moves the caret to the end.
func (t *TextArea) SetText(text string) {
	t.Lines = strings.Split(text, "\n")
	t.CaretY = len(t.Lines) - 1
	t.CaretX = len([]rune(t.Lines[t.CaretY]))
	t.OffX, t.OffY = 0, 0
	t.ensureVisible()
}

func (t *TextArea) clampCaret() {
	if t.CaretY < 0 {
		t.CaretY = 0
	}
	if t.CaretY >= len(t.Lines) {
		t.CaretY = len(t.Lines) - 1
	}
	maxX := len([]rune(t.Lines[t.CaretY]))
	if t.CaretX < 0 {
		t.CaretX = 0
	}
	if t.CaretX > maxX {
		t.CaretX = maxX
	}
}

func (t *TextArea) ensureVisible() {
	if t.CaretX < t.OffX {
		t.OffX = t.CaretX
	}
	if t.w > 0 && t.CaretX >= t.OffX+t.w {
		t.OffX = t.CaretX - t.w + 1
	}
	if t.OffX < 0 {
		t.OffX = 0
	}
	if t.CaretY < t.OffY {
		t.OffY = t.CaretY
	}
	if t.h > 0 && t.CaretY >= t.OffY+t.h {
		t.OffY = t.CaretY - t.h + 1
	}
	if t.OffY < 0 {
		t.OffY = 0
	}
}

// HandleKey applies one key event and reports whether the buffer
// contents changed. Caret movement alone returns false.
func (t *TextArea) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		t.CaretX--
	case tcell.KeyRight:
		t.CaretX++
	case tcell.KeyUp:
		t.CaretY--
	case tcell.KeyDown:
		t.CaretY++
	case tcell.KeyHome:
		t.CaretX = 0
	case tcell.KeyEnd:
		t.CaretX = 1 << 30
	case tcell.KeyPgUp:
		t.CaretY -= t.h
	case tcell.KeyPgDn:
		t.CaretY += t.h
	case tcell.KeyEnter:
		line := []rune(t.Lines[t.CaretY])
		head := string(line[:t.CaretX])
		tail := string(line[t.CaretX:])
		t.Lines[t.CaretY] = head
		t.Lines = append(t.Lines[:t.CaretY+1], append([]string{""}, t.Lines[t.CaretY+1:]...)...)
		t.Lines[t.CaretY+1] = tail
		t.CaretY++
		t.CaretX = 0
		t.clampCaret()
		t.ensureVisible()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.CaretX > 0 {
			line := []rune(t.Lines[t.CaretY])
			t.Lines[t.CaretY] = string(append(line[:t.CaretX-1], line[t.CaretX:]...))
			t.CaretX--
		} else if t.CaretY > 0 {
			prev := t.Lines[t.CaretY-1]
			cur := t.Lines[t.CaretY]
			t.CaretX = len([]rune(prev))
			t.Lines[t.CaretY-1] = prev + cur
			t.Lines = append(t.Lines[:t.CaretY], t.Lines[t.CaretY+1:]...)
			t.CaretY--
		} else {
			return false
		}
		t.clampCaret()
		t.ensureVisible()
		return true
	case tcell.KeyDelete:
		line := []rune(t.Lines[t.CaretY])
		if t.CaretX < len(line) {
			t.Lines[t.CaretY] = string(append(line[:t.CaretX], line[t.CaretX+1:]...))
		} else if t.CaretY+1 < len(t.Lines) {
			t.Lines[t.CaretY] = t.Lines[t.CaretY] + t.Lines[t.CaretY+1]
			t.Lines = append(t.Lines[:t.CaretY+1], t.Lines[t.CaretY+2:]...)
		} else {
			return false
		}
		t.ensureVisible()
		return true
	case tcell.KeyRune:
		line := []rune(t.Lines[t.CaretY])
		if t.CaretX > len(line) {
			t.CaretX = len(line)
		}
		line = append(line[:t.CaretX], append([]rune{ev.Rune()}, line[t.CaretX:]...)...)
		t.Lines[t.CaretY] = string(line)
		t.CaretX++
		t.ensureVisible()
		return true
	default:
		return false
	}
	t.clampCaret()
	t.ensureVisible()
	return false
}

// InsertText inserts s at the caret, splitting on newlines.
func (t *TextArea) InsertText(s string) {
	for _, r := range s {
		if r == '\n' {
			line := []rune(t.Lines[t.CaretY])
			head := string(line[:t.CaretX])
			tail := string(line[t.CaretX:])
			t.Lines[t.CaretY] = head
			t.Lines = append(t.Lines[:t.CaretY+1], append([]string{""}, t.Lines[t.CaretY+1:]...)...)
			t.Lines[t.CaretY+1] = tail
			t.CaretY++
			t.CaretX = 0
			continue
		}
		if r == '\r' {
			continue
		}
		line := []rune(t.Lines[t.CaretY])
		if t.CaretX > len(line) {
			t.CaretX = len(line)
		}
		line = append(line[:t.CaretX], append([]rune{r}, line[t.CaretX:]...)...)
		t.Lines[t.CaretY] = string(line)
		t.CaretX++
	}
	t.clampCaret()
	t.ensureVisible()
}

// Draw renders the visible viewport.
func (t *TextArea) Draw(d ScreenDriver) {
	for row := 0; row < t.h; row++ {
		col := 0
		ly := t.OffY + row
		var visible []rune
		if ly < len(t.Lines) {
			visible = []rune(t.Lines[ly])
		}
		for cx := t.OffX; cx < len(visible) && col < t.w; cx++ {
			d.SetContent(t.x+col, t.y+row, visible[cx], nil, t.Style)
			col += runewidth.RuneWidth(visible[cx])
		}
		for ; col < t.w; col++ {
			d.SetContent(t.x+col, t.y+row, ' ', nil, t.Style)
		}
	}
}

// CursorPos returns the terminal cursor location for the caret, or
// ok=false when the caret is scrolled out of view.
func (t *TextArea) CursorPos() (x, y int, ok bool) {
	vx := t.CaretX - t.OffX
	vy := t.CaretY - t.OffY
	if vx < 0 || vy < 0 || vx >= t.w || vy >= t.h {
		return 0, 0, false
	}
	// Account for wide runes left of the caret on this line.
	col := 0
	line := []rune(t.Lines[t.CaretY])
	for cx := t.OffX; cx < t.CaretX && cx < len(line); cx++ {
		col += runewidth.RuneWidth(line[cx])
	}
	if col >= t.w {
		return 0, 0, false
	}
	return t.x + col, t.y + vy, true
}
