// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: jsonfmt/session.go
// Summary: Session orchestrator: debounced formatting, statuses, copy.
// Usage: The UI shell feeds events in and implements Renderer/Clipboard.

package jsonfmt

import (
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/framegrace/jsonpane/debounce"
)

// Severity grades a status or notification.
type Severity int

const (
	SeverityNone Severity = iota
	SeveritySuccess
	SeverityError
	SeverityWarning
)

// Status is one status indicator's content.
type Status struct {
	Text     string
	Severity Severity
}

// Side selects one of the two independent status indicators.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

// Renderer is the display capability the UI shell provides. The session
// never touches a UI toolkit directly. Calls may arrive from debounce
// timer goroutines; implementations must marshal onto their own event
// loop as needed.
type Renderer interface {
	// RenderOutput replaces the output area with a successful result.
	RenderOutput(res Result)
	// RenderError replaces the output area with an error block.
	RenderError(err *ParseError)
	// RenderIdle resets the output area to the placeholder state.
	RenderIdle()
	// RenderStatus replaces one side's status indicator.
	RenderStatus(side Side, st Status)
	// Notify shows a transient notification.
	Notify(st Status)
}

// Clipboard is the external copy surface. Set is fallible; failures are
// reported to the user as notifications and never propagate further.
type Clipboard interface {
	Set(text string) error
}

// Recorder receives every successfully formatted document.
type Recorder interface {
	Record(compact, shape string, byteSize int) error
}

// Session wires the engine to a renderer through two debounce channels:
// a typing channel and a much shorter paste channel, so a pasted document
// renders near-instantly while typing stays quiet. Each new input cancels
// any pending pass, and a generation counter drops fires that lost the
// race anyway, so output always corresponds to the most recent input.
type Session struct {
	engine   *Engine
	renderer Renderer
	clip     Clipboard
	recorder Recorder

	typing *debounce.Timer
	paste  *debounce.Timer
	gen    atomic.Uint64

	mu            sync.Mutex
	lastFormatted string
}

// DefaultTypingQuiet and DefaultPasteQuiet are the debounce quiet periods.
const (
	DefaultTypingQuiet = 300 * time.Millisecond
	DefaultPasteQuiet  = 10 * time.Millisecond
)

// NewSession builds a session. All collaborators are injected explicitly;
// nothing is looked up ambiently.
func NewSession(engine *Engine, renderer Renderer, clip Clipboard, typingQuiet, pasteQuiet time.Duration) *Session {
	if typingQuiet <= 0 {
		typingQuiet = DefaultTypingQuiet
	}
	if pasteQuiet <= 0 {
		pasteQuiet = DefaultPasteQuiet
	}
	return &Session{
		engine:   engine,
		renderer: renderer,
		clip:     clip,
		typing:   debounce.New(typingQuiet),
		paste:    debounce.New(pasteQuiet),
	}
}

// SetRecorder attaches an optional history recorder.
func (s *Session) SetRecorder(rec Recorder) {
	s.recorder = rec
}

// InputChanged schedules a formatting pass after the typing quiet period.
// Intermediate keystrokes within the quiet period produce no pass at all.
func (s *Session) InputChanged(text string) {
	gen := s.gen.Add(1)
	s.typing.Schedule(func() { s.refresh(gen, text) })
}

// Pasted schedules a formatting pass for text on the paste channel. The
// caller captures the committed field content by value at the paste
// boundary; the timer goroutine never reads shared editor state. Edits
// arriving within the quiet period supersede the paste through the
// generation counter.
func (s *Session) Pasted(text string) {
	gen := s.gen.Add(1)
	s.typing.Stop()
	s.paste.Schedule(func() { s.refresh(gen, text) })
}

// FormatNow formats immediately, bypassing both debounce channels.
func (s *Session) FormatNow(text string) {
	gen := s.gen.Add(1)
	s.typing.Stop()
	s.paste.Stop()
	s.refresh(gen, text)
}

// Minify validates first and refuses malformed input with a warning
// instead of attempting partial minification. On invalid input the
// previous output is left untouched.
func (s *Session) Minify(text string) {
	gen := s.gen.Add(1)
	s.typing.Stop()
	s.paste.Stop()

	res := s.engine.Format(text, ModeMinify)
	if res.Kind == KindFailure {
		s.renderer.Notify(Status{Text: "Cannot minify invalid JSON", Severity: SeverityWarning})
		s.renderer.RenderStatus(SideInput, Status{Text: invalidStatus(text), Severity: SeverityError})
		return
	}
	s.deliver(gen, text, res)
}

// Stop cancels any pending formatting pass.
func (s *Session) Stop() {
	s.typing.Stop()
	s.paste.Stop()
}

// LastFormatted returns the most recent successfully formatted text.
// Overwritten whole by each successful pass; read by the copy-output
// action. Last-writer-wins is sufficient since at most one pass is in
// flight at a time.
func (s *Session) LastFormatted() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFormatted
}

// CopyInput copies the raw input text to the clipboard.
func (s *Session) CopyInput(text string) {
	s.copy(text, "Raw")
}

// CopyOutput copies the most recent successfully formatted text.
func (s *Session) CopyOutput() {
	s.copy(s.LastFormatted(), "Formatted")
}

func (s *Session) copy(text, label string) {
	if strings.TrimSpace(text) == "" {
		s.renderer.Notify(Status{Text: "Nothing to copy", Severity: SeverityWarning})
		return
	}
	if err := s.clip.Set(text); err != nil {
		log.Printf("Session: clipboard copy failed: %v", err)
		s.renderer.Notify(Status{Text: "Failed to copy to clipboard", Severity: SeverityError})
		return
	}
	s.renderer.Notify(Status{Text: label + " JSON copied to clipboard", Severity: SeveritySuccess})
}

func (s *Session) refresh(gen uint64, raw string) {
	s.deliver(gen, raw, s.engine.Format(raw, ModePretty))
}

// deliver publishes a result unless a newer input superseded it.
func (s *Session) deliver(gen uint64, raw string, res Result) {
	if gen != s.gen.Load() {
		return
	}

	switch res.Kind {
	case KindEmpty:
		s.mu.Lock()
		s.lastFormatted = ""
		s.mu.Unlock()
		s.renderer.RenderIdle()
		s.renderer.RenderStatus(SideInput, Status{})
		s.renderer.RenderStatus(SideOutput, Status{})

	case KindSuccess:
		s.mu.Lock()
		s.lastFormatted = res.Text
		s.mu.Unlock()
		if s.recorder != nil {
			if err := s.recorder.Record(res.Compact, res.Stats.Shape, res.Stats.Bytes); err != nil {
				log.Printf("Session: history record failed: %v", err)
			}
		}
		s.renderer.RenderOutput(res)
		s.renderer.RenderStatus(SideInput, Status{Text: "Valid JSON", Severity: SeveritySuccess})
		s.renderer.RenderStatus(SideOutput, Status{Text: res.Stats.String(), Severity: SeveritySuccess})

	case KindFailure:
		s.renderer.RenderError(res.Err)
		s.renderer.RenderStatus(SideInput, Status{Text: invalidStatus(raw), Severity: SeverityError})
		s.renderer.RenderStatus(SideOutput, Status{})
	}
}

func invalidStatus(raw string) string {
	if hint := DetectHint(strings.TrimSpace(raw)); hint != "" {
		return "Invalid JSON (input looks like " + hint + ")"
	}
	return "Invalid JSON"
}
