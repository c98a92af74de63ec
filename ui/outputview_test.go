// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/jsonpane/highlight"
	"github.com/framegrace/jsonpane/jsonfmt"
)

func newTestView(w, h int) (*OutputView, *fakeDriver) {
	view := NewOutputView(highlight.NewTheme(""))
	view.SetRect(0, 0, w, h)
	return view, newFakeDriver(w, h)
}

func TestOutputViewIdlePlaceholder(t *testing.T) {
	view, d := newTestView(60, 5)
	view.Draw(d)
	if got := d.rowText(0, 0, 60); got != Placeholder {
		t.Fatalf("idle row = %q, want placeholder", got)
	}
}

func TestOutputViewContent(t *testing.T) {
	view, d := newTestView(20, 5)
	view.ShowContent(highlight.New().Lines("{\n  \"a\": 1\n}"))
	view.Draw(d)

	if got := d.rowText(0, 0, 20); got != "{" {
		t.Errorf("row 0 = %q", got)
	}
	if got := d.rowText(1, 0, 20); got != `  "a": 1` {
		t.Errorf("row 1 = %q", got)
	}
	if got := d.rowText(2, 0, 20); got != "}" {
		t.Errorf("row 2 = %q", got)
	}
}

func TestOutputViewErrorBlock(t *testing.T) {
	view, d := newTestView(60, 5)
	view.ShowError(&jsonfmt.ParseError{
		Message: "invalid character '}' looking for beginning of value",
		Offset:  9,
		Line:    2,
		Column:  8,
	})
	view.Draw(d)

	if got := d.rowText(0, 0, 60); got != ErrorLabel {
		t.Errorf("row 0 = %q, want %q", got, ErrorLabel)
	}
	if got := d.rowText(1, 0, 60); got != "invalid character '}' looking for beginning of value" {
		t.Errorf("row 1 = %q", got)
	}
	if got := d.rowText(2, 0, 60); got != "Line 2, Column 8" {
		t.Errorf("row 2 = %q", got)
	}
}

func TestOutputViewErrorWithoutPosition(t *testing.T) {
	view, d := newTestView(60, 5)
	view.ShowError(&jsonfmt.ParseError{Message: "unexpected end of JSON input", Offset: -1})
	view.Draw(d)

	if got := d.rowText(2, 0, 60); got != "" {
		t.Errorf("position row rendered without position info: %q", got)
	}
}

func TestOutputViewScrollClamping(t *testing.T) {
	view, _ := newTestView(20, 3)
	var lines []highlight.Line
	for i := 0; i < 10; i++ {
		lines = append(lines, highlight.Line{{Text: "x"}})
	}
	view.ShowContent(lines)

	if view.HandleKey(keyEv(tcell.KeyUp)) && view.offY != 0 {
		t.Fatalf("scrolled above the top: %d", view.offY)
	}
	view.HandleKey(keyEv(tcell.KeyDown))
	if view.offY != 1 {
		t.Fatalf("offY = %d after Down, want 1", view.offY)
	}
	view.HandleKey(keyEv(tcell.KeyEnd))
	if view.offY != 7 {
		t.Fatalf("offY = %d after End, want 7", view.offY)
	}
	view.HandleKey(keyEv(tcell.KeyPgDn))
	if view.offY != 7 {
		t.Fatalf("offY = %d, PgDn past the end should clamp", view.offY)
	}
	view.HandleKey(keyEv(tcell.KeyHome))
	if view.offY != 0 || view.offX != 0 {
		t.Fatalf("Home did not reset scroll: (%d, %d)", view.offX, view.offY)
	}

	if view.HandleKey(runeEv('x')) {
		t.Fatalf("plain rune claimed as handled by a read-only view")
	}
}

func TestOutputViewNewContentResetsScroll(t *testing.T) {
	view, _ := newTestView(20, 3)
	var lines []highlight.Line
	for i := 0; i < 10; i++ {
		lines = append(lines, highlight.Line{{Text: "x"}})
	}
	view.ShowContent(lines)
	view.HandleKey(keyEv(tcell.KeyEnd))

	view.ShowContent(lines[:2])
	if view.offY != 0 {
		t.Fatalf("offY = %d after new content, want 0", view.offY)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("abcdef", 4)
	if len(got) != 2 || got[0] != "abcd" || got[1] != "ef" {
		t.Fatalf("wrapText = %q", got)
	}
	if got := wrapText("abc", 0); len(got) != 1 || got[0] != "abc" {
		t.Fatalf("zero width wrap = %q", got)
	}
}
