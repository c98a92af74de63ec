// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

type fakeCell struct {
	r     rune
	style tcell.Style
}

// fakeDriver is an in-memory ScreenDriver. PollEvent drains posted
// events before scripted ones, then returns nil so Run exits cleanly.
type fakeDriver struct {
	mu sync.Mutex

	w, h  int
	cells map[[2]int]fakeCell

	script []tcell.Event
	posted []tcell.Event

	clip []byte

	inited   bool
	finished bool

	cursorX, cursorY int
	cursorShown      bool
}

func newFakeDriver(w, h int, script ...tcell.Event) *fakeDriver {
	return &fakeDriver{w: w, h: h, cells: make(map[[2]int]fakeCell), script: script}
}

func (d *fakeDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inited = true
	return nil
}

func (d *fakeDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finished = true
}

func (d *fakeDriver) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.w, d.h
}

func (d *fakeDriver) SetStyle(tcell.Style) {}

func (d *fakeDriver) HideCursor() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursorShown = false
}

func (d *fakeDriver) ShowCursor(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursorX, d.cursorY, d.cursorShown = x, y, true
}

func (d *fakeDriver) Show() {}

func (d *fakeDriver) PollEvent() tcell.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.posted) > 0 {
		ev := d.posted[0]
		d.posted = d.posted[1:]
		return ev
	}
	if len(d.script) > 0 {
		ev := d.script[0]
		d.script = d.script[1:]
		return ev
	}
	return nil
}

func (d *fakeDriver) PostEvent(ev tcell.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.posted = append(d.posted, ev)
	return nil
}

func (d *fakeDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells[[2]int{x, y}] = fakeCell{r: mainc, style: style}
}

func (d *fakeDriver) EnablePaste() {}

func (d *fakeDriver) SetClipboard(data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clip = append([]byte(nil), data...)
}

// rowText reads back one row of cells as a string, right-trimmed.
func (d *fakeDriver) rowText(y, x0, x1 int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		c, ok := d.cells[[2]int{x, y}]
		if !ok || c.r == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (d *fakeDriver) clipboard() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.clip)
}

func keyEv(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEv(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}
