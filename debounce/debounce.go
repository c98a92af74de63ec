// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: debounce/debounce.go
// Summary: Single-slot cancellable debounce timer.

package debounce

import (
	"sync"
	"time"
)

// Timer coalesces rapid triggers into a single fire after a quiet period.
// Scheduling stops any previously armed timer outright, so at most one
// fire is outstanding per Timer at any time.
type Timer struct {
	d  time.Duration
	mu sync.Mutex
	t  *time.Timer
}

// New returns a Timer with the given quiet period.
func New(d time.Duration) *Timer {
	return &Timer{d: d}
}

// Schedule arms the timer to run fn once the quiet period elapses with no
// further Schedule calls. A pending fn that has not fired yet is cancelled,
// never merely ignored. fn runs on its own goroutine.
func (t *Timer) Schedule(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
	}
	t.t = time.AfterFunc(t.d, fn)
}

// Stop cancels any pending fire.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

// Quiet reports the configured quiet period.
func (t *Timer) Quiet() time.Duration {
	return t.d
}
