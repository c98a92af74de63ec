// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: jsonfmt/position.go
// Summary: Byte-offset to line/column mapping for error reporting.

package jsonfmt

import "strings"

// LineColumn converts a byte offset in text to a 1-based (line, column)
// pair. Only '\n' delimits lines, so "\r\n" endings are not double
// counted; a '\r' before the offset counts into the column. Offsets past
// the end of text clamp to len(text).
func LineColumn(text string, offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	lineStart := strings.LastIndex(before, "\n") + 1
	return strings.Count(before, "\n") + 1, offset - lineStart + 1
}
