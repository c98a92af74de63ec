// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/screen.go
// Summary: Event loop and layout for the two-pane shell.
// Usage: Implements jsonfmt.Renderer; the session is injected at startup.

package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/jsonpane/debounce"
	"github.com/framegrace/jsonpane/highlight"
	"github.com/framegrace/jsonpane/jsonfmt"
)

const helpText = " jsonpane   F2 Format  F3 Minify  F4 Style  F5 Copy Input  F6 Copy Output  Tab Switch  Ctrl+Q Quit"

// styleCycle are the chroma styles F4 rotates through.
var styleCycle = []string{"catppuccin-mocha", "dracula", "monokai", "nord", "github-dark"}

// Focus selects which pane receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusOutput
)

// eventRender carries a state mutation from a session goroutine onto the
// event loop. All display state changes go through it, so the loop stays
// the only writer.
type eventRender struct {
	tcell.EventTime
	apply func(*Screen)
}

// Screen is the tcell shell: input editor, highlighted output view, and
// two status indicators.
type Screen struct {
	driver  ScreenDriver
	session *jsonfmt.Session
	theme   *highlight.Theme

	input  *TextArea
	output *OutputView
	bar    *StatusBar

	statusIn  jsonfmt.Status
	statusOut jsonfmt.Status

	notif       jsonfmt.Status
	notifActive bool
	notifTimer  *debounce.Timer

	styleName     string
	onStyleChange func(name string)

	focus   Focus
	pasting bool
	w, h    int
}

// NewScreen builds the shell. notifDuration bounds how long transient
// notifications stay visible.
func NewScreen(driver ScreenDriver, theme *highlight.Theme, notifDuration time.Duration) *Screen {
	if notifDuration <= 0 {
		notifDuration = 2 * time.Second
	}
	return &Screen{
		driver:     driver,
		theme:      theme,
		input:      NewTextArea(theme.Base()),
		output:     NewOutputView(theme),
		bar:        NewStatusBar(theme.Base()),
		notifTimer: debounce.New(notifDuration),
		styleName:  highlight.DefaultStyleName,
	}
}

// ConfigureStyles records the active style name and a callback invoked
// with the new name each time the user cycles styles.
func (s *Screen) ConfigureStyles(current string, onChange func(name string)) {
	if current != "" {
		s.styleName = current
	}
	s.onStyleChange = onChange
}

// SetSession injects the formatting session. Must be called before Run;
// the shortcut handlers hold this reference rather than any global.
func (s *Screen) SetSession(session *jsonfmt.Session) {
	s.session = session
}

// SetInitialText preloads the input editor (session restore).
func (s *Screen) SetInitialText(text string) {
	s.input.SetText(text)
}

// Run drives the event loop until quit. It owns the terminal for its
// whole lifetime.
func (s *Screen) Run() error {
	if s.session == nil {
		return fmt.Errorf("screen has no session attached")
	}
	if err := s.driver.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.driver.Fini()

	s.driver.SetStyle(s.theme.Base())
	s.driver.EnablePaste()
	s.resize()

	if text := s.input.Text(); text != "" {
		s.session.FormatNow(text)
	}
	s.draw()

	for {
		ev := s.driver.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *eventRender:
			ev.apply(s)
			s.draw()
		case *tcell.EventResize:
			s.resize()
			s.draw()
		case *tcell.EventPaste:
			if ev.Start() {
				s.pasting = true
			} else {
				s.pasting = false
				s.session.Pasted(s.input.Text())
			}
			s.draw()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				s.session.Stop()
				return nil
			}
			s.draw()
		}
	}
}

func (s *Screen) handleKey(ev *tcell.EventKey) (quit bool) {
	// Pasted text arrives as plain key events between the bracketed
	// paste markers; shortcuts stay inert until the paste completes.
	if !s.pasting {
		switch {
		case ev.Key() == tcell.KeyCtrlQ:
			return true
		case ev.Key() == tcell.KeyTab:
			s.toggleFocus()
			return false
		case ev.Key() == tcell.KeyF2,
			ev.Key() == tcell.KeyEnter && ev.Modifiers()&tcell.ModCtrl != 0:
			s.session.FormatNow(s.input.Text())
			return false
		case ev.Key() == tcell.KeyF3:
			s.session.Minify(s.input.Text())
			return false
		case ev.Key() == tcell.KeyF4:
			s.cycleStyle()
			return false
		case ev.Key() == tcell.KeyF5:
			s.session.CopyInput(s.input.Text())
			return false
		case ev.Key() == tcell.KeyF6:
			s.session.CopyOutput()
			return false
		case ev.Key() == tcell.KeyCtrlC:
			if s.focus == FocusOutput {
				s.session.CopyOutput()
			} else {
				s.session.CopyInput(s.input.Text())
			}
			return false
		}
	}

	if s.focus == FocusInput {
		if s.input.HandleKey(ev) {
			s.session.InputChanged(s.input.Text())
		}
	} else {
		s.output.HandleKey(ev)
	}
	return false
}

// cycleStyle advances to the next style, restyles every widget, and
// reports the choice so the caller can persist it.
func (s *Screen) cycleStyle() {
	next := styleCycle[0]
	for i, name := range styleCycle {
		if name == s.styleName {
			next = styleCycle[(i+1)%len(styleCycle)]
			break
		}
	}
	s.styleName = next
	s.applyTheme(highlight.NewTheme(next))
	if s.onStyleChange != nil {
		s.onStyleChange(next)
	}
	s.Notify(jsonfmt.Status{Text: "Style: " + next, Severity: jsonfmt.SeveritySuccess})
}

func (s *Screen) applyTheme(theme *highlight.Theme) {
	s.theme = theme
	s.input.Style = theme.Base()
	s.output.SetTheme(theme)
	s.bar.SetBase(theme.Base())
	s.driver.SetStyle(theme.Base())
}

func (s *Screen) toggleFocus() {
	if s.focus == FocusInput {
		s.focus = FocusOutput
	} else {
		s.focus = FocusInput
	}
}

func (s *Screen) resize() {
	s.w, s.h = s.driver.Size()
	paneTop := 1
	paneH := s.h - 2
	if paneH < 0 {
		paneH = 0
	}
	leftW := (s.w - 1) / 2
	rightX := leftW + 1
	s.input.SetRect(0, paneTop, leftW, paneH)
	s.output.SetRect(rightX, paneTop, s.w-rightX, paneH)
}

func (s *Screen) draw() {
	base := s.theme.Base()
	dim := base.Dim(true)

	// Help bar.
	col := 0
	for _, r := range helpText {
		if col >= s.w {
			break
		}
		s.driver.SetContent(col, 0, r, nil, dim)
		col++
	}
	for ; col < s.w; col++ {
		s.driver.SetContent(col, 0, ' ', nil, dim)
	}

	s.input.Draw(s.driver)
	s.output.Draw(s.driver)

	// Pane separator.
	sepX := (s.w - 1) / 2
	for row := 1; row < s.h-1; row++ {
		s.driver.SetContent(sepX, row, '│', nil, dim)
	}

	// Status row: input status left, output status (or an active
	// notification) right.
	if s.h >= 2 {
		leftW := (s.w - 1) / 2
		s.bar.Draw(s.driver, 0, s.h-1, leftW, s.statusIn)
		right := s.statusOut
		if s.notifActive {
			right = s.notif
		}
		s.bar.Draw(s.driver, leftW+1, s.h-1, s.w-leftW-1, right)
		s.driver.SetContent(leftW, s.h-1, '│', nil, dim)
	}

	if s.focus == FocusInput {
		if x, y, ok := s.input.CursorPos(); ok {
			s.driver.ShowCursor(x, y)
		} else {
			s.driver.HideCursor()
		}
	} else {
		s.driver.HideCursor()
	}
	s.driver.Show()
}

// post marshals a display mutation onto the event loop. Safe to call
// from any goroutine.
func (s *Screen) post(apply func(*Screen)) {
	ev := &eventRender{apply: apply}
	ev.SetEventNow()
	if err := s.driver.PostEvent(ev); err != nil {
		log.Printf("Screen: dropped render event: %v", err)
	}
}

// RenderOutput implements jsonfmt.Renderer.
func (s *Screen) RenderOutput(res jsonfmt.Result) {
	s.post(func(s *Screen) { s.output.ShowContent(res.Lines) })
}

// RenderError implements jsonfmt.Renderer.
func (s *Screen) RenderError(err *jsonfmt.ParseError) {
	s.post(func(s *Screen) { s.output.ShowError(err) })
}

// RenderIdle implements jsonfmt.Renderer.
func (s *Screen) RenderIdle() {
	s.post(func(s *Screen) { s.output.ShowIdle() })
}

// RenderStatus implements jsonfmt.Renderer.
func (s *Screen) RenderStatus(side jsonfmt.Side, st jsonfmt.Status) {
	s.post(func(s *Screen) {
		if side == jsonfmt.SideInput {
			s.statusIn = st
		} else {
			s.statusOut = st
		}
	})
}

// Notify implements jsonfmt.Renderer. The notification expires after the
// configured duration; a newer notification resets the clock.
func (s *Screen) Notify(st jsonfmt.Status) {
	s.post(func(s *Screen) {
		s.notif = st
		s.notifActive = true
	})
	s.notifTimer.Schedule(func() {
		s.post(func(s *Screen) { s.notifActive = false })
	})
}
