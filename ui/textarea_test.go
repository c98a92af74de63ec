// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTextAreaTypeAndReadBack(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)

	for _, r := range `{"a": 1}` {
		if !ta.HandleKey(runeEv(r)) {
			t.Fatalf("typing %q did not report a change", r)
		}
	}
	if ta.Text() != `{"a": 1}` {
		t.Fatalf("Text() = %q", ta.Text())
	}
}

func TestTextAreaEnterSplitsLine(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("abcd")
	ta.CaretX = 2

	if !ta.HandleKey(keyEv(tcell.KeyEnter)) {
		t.Fatalf("Enter did not report a change")
	}
	if ta.Text() != "ab\ncd" {
		t.Fatalf("Text() = %q", ta.Text())
	}
	if ta.CaretY != 1 || ta.CaretX != 0 {
		t.Fatalf("caret at (%d, %d), want (0, 1)", ta.CaretX, ta.CaretY)
	}
}

func TestTextAreaBackspaceJoinsLines(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("ab\ncd")
	ta.CaretY, ta.CaretX = 1, 0

	if !ta.HandleKey(keyEv(tcell.KeyBackspace2)) {
		t.Fatalf("Backspace did not report a change")
	}
	if ta.Text() != "abcd" {
		t.Fatalf("Text() = %q", ta.Text())
	}
	if ta.CaretY != 0 || ta.CaretX != 2 {
		t.Fatalf("caret at (%d, %d), want (2, 0)", ta.CaretX, ta.CaretY)
	}
}

func TestTextAreaDeleteAtLineEnd(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("ab\ncd")
	ta.CaretY, ta.CaretX = 0, 2

	if !ta.HandleKey(keyEv(tcell.KeyDelete)) {
		t.Fatalf("Delete did not report a change")
	}
	if ta.Text() != "abcd" {
		t.Fatalf("Text() = %q", ta.Text())
	}
}

func TestTextAreaMovementIsNotAChange(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("abc\ndef")

	for _, key := range []tcell.Key{
		tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown,
		tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn,
	} {
		if ta.HandleKey(keyEv(key)) {
			t.Errorf("key %v reported a buffer change", key)
		}
	}
	if ta.Text() != "abc\ndef" {
		t.Fatalf("movement modified the buffer: %q", ta.Text())
	}
}

func TestTextAreaBackspaceAtOrigin(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("x")
	ta.CaretX = 0

	if ta.HandleKey(keyEv(tcell.KeyBackspace2)) {
		t.Fatalf("Backspace at origin reported a change")
	}
	if ta.Text() != "x" {
		t.Fatalf("Text() = %q", ta.Text())
	}
}

func TestTextAreaInsertTextSkipsCarriageReturns(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)

	ta.InsertText("{\r\n  \"a\": 1\r\n}")
	if ta.Text() != "{\n  \"a\": 1\n}" {
		t.Fatalf("Text() = %q", ta.Text())
	}
}

func TestTextAreaSetTextMovesCaretToEnd(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("ab\ncde")

	if ta.CaretY != 1 || ta.CaretX != 3 {
		t.Fatalf("caret at (%d, %d), want (3, 1)", ta.CaretX, ta.CaretY)
	}
}

func TestTextAreaCursorPosAccountsForWideRunes(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 40, 10)
	ta.SetText("日a")
	ta.CaretX = 1

	x, y, ok := ta.CursorPos()
	if !ok {
		t.Fatalf("caret unexpectedly out of view")
	}
	if x != 2 || y != 0 {
		t.Fatalf("cursor at (%d, %d), want (2, 0)", x, y)
	}
}

func TestTextAreaScrollsCaretIntoView(t *testing.T) {
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 10, 2)
	ta.SetText("a\nb\nc\nd\ne")

	if ta.OffY != 3 {
		t.Fatalf("OffY = %d, want 3 (caret on last line)", ta.OffY)
	}
	if _, _, ok := ta.CursorPos(); !ok {
		t.Fatalf("caret not visible after SetText")
	}
}

func TestTextAreaDraw(t *testing.T) {
	d := newFakeDriver(10, 3)
	ta := NewTextArea(tcell.StyleDefault)
	ta.SetRect(0, 0, 10, 3)
	ta.SetText("ab\ncd")
	ta.Draw(d)

	if got := d.rowText(0, 0, 10); got != "ab" {
		t.Errorf("row 0 = %q", got)
	}
	if got := d.rowText(1, 0, 10); got != "cd" {
		t.Errorf("row 1 = %q", got)
	}
}
