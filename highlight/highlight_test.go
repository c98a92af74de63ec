// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package highlight

import (
	"strings"
	"testing"
)

func TestMarkupClassifiesRoles(t *testing.T) {
	h := New()
	markup := h.Markup(`{"key": "value", "n": 1.5, "t": true, "f": false, "nil": null}`)

	wants := []string{
		`<span class="json-key">"key"</span>`,
		`<span class="json-string">"value"</span>`,
		`<span class="json-number">1.5</span>`,
		`<span class="json-boolean">true</span>`,
		`<span class="json-boolean">false</span>`,
		`<span class="json-null">null</span>`,
	}
	for _, want := range wants {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %q:\n%s", want, markup)
		}
	}
	if !strings.Contains(markup, `<span class="json-punct">`) {
		t.Errorf("markup missing punctuation spans:\n%s", markup)
	}
}

// A string value containing ": " must classify as a string, not a key.
// Key detection is positional, so a colon inside a value cannot fool it.
func TestMarkupColonInsideStringValue(t *testing.T) {
	h := New()
	markup := h.Markup(`{"a": "b: c"}`)
	if !strings.Contains(markup, `<span class="json-string">"b: c"</span>`) {
		t.Errorf(`"b: c" not classified as a string:`+"\n%s", markup)
	}
	if strings.Contains(markup, `<span class="json-key">"b: c"</span>`) {
		t.Errorf(`value "b: c" misclassified as a key:`+"\n%s", markup)
	}
}

func TestMarkupEscapesSensitiveCharacters(t *testing.T) {
	h := New()
	markup := h.Markup(`{"a": "<x> & y"}`)
	if !strings.Contains(markup, "&lt;x&gt; &amp; y") {
		t.Errorf("string value not escaped:\n%s", markup)
	}
	if strings.Contains(markup, "<x>") {
		t.Errorf("raw angle brackets leaked into markup:\n%s", markup)
	}
}

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"<&>", "&lt;&amp;&gt;"},
		{`a < b && b > c`, "a &lt; b &amp;&amp; b &gt; c"},
	}
	for _, tc := range cases {
		if got := Escape(tc.in); got != tc.want {
			t.Errorf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLinesSplitsPerLine(t *testing.T) {
	h := New()
	lines := h.Lines("{\n  \"a\": 1\n}")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	join := func(l Line) string {
		var sb strings.Builder
		for _, seg := range l {
			sb.WriteString(seg.Text)
		}
		return sb.String()
	}
	if join(lines[0]) != "{" || join(lines[1]) != `  "a": 1` || join(lines[2]) != "}" {
		t.Fatalf("line text mismatch: %q %q %q", join(lines[0]), join(lines[1]), join(lines[2]))
	}

	var sawKey, sawNumber bool
	for _, seg := range lines[1] {
		switch seg.Class {
		case ClassKey:
			sawKey = true
		case ClassNumber:
			sawNumber = true
		}
	}
	if !sawKey || !sawNumber {
		t.Errorf("middle line missing key/number segments: %+v", lines[1])
	}
}

func TestLinesPreservesEmptyLines(t *testing.T) {
	h := New()
	lines := h.Lines("[\n\n]")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if len(lines[1]) != 0 {
		t.Errorf("empty line carries segments: %+v", lines[1])
	}
}

func TestClassNames(t *testing.T) {
	cases := map[Class]string{
		ClassPlain:  "",
		ClassKey:    "json-key",
		ClassString: "json-string",
		ClassNumber: "json-number",
		ClassBool:   "json-boolean",
		ClassNull:   "json-null",
		ClassPunct:  "json-punct",
	}
	for cls, want := range cases {
		if got := cls.Name(); got != want {
			t.Errorf("Class(%d).Name() = %q, want %q", cls, got, want)
		}
	}
}
