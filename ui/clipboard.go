// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/clipboard.go
// Summary: Clipboard access: screen OSC 52 path with tty fallback.

package ui

import (
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Clipboard copies text out of the application. With an active screen it
// uses the driver's clipboard support (OSC 52 under the hood); without
// one it writes the sequence to the controlling terminal directly.
type Clipboard struct {
	driver ScreenDriver
}

// NewClipboard returns a clipboard bound to driver. driver may be nil in
// pipe mode; the fallback path is used then.
func NewClipboard(driver ScreenDriver) *Clipboard {
	return &Clipboard{driver: driver}
}

// Set copies text to the system clipboard.
func (c *Clipboard) Set(text string) error {
	if c.driver != nil {
		c.driver.SetClipboard([]byte(text))
		return nil
	}
	return osc52Copy(text)
}

// osc52Copy writes the OSC 52 clipboard sequence straight to the
// controlling terminal. The tty handle is scoped to this call and closed
// on every path.
func osc52Copy(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	defer tty.Close()

	if !term.IsTerminal(int(tty.Fd())) {
		return fmt.Errorf("no terminal available for clipboard")
	}
	payload := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(tty, "\x1b]52;c;%s\x07", payload); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}
