// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: jsonfmt/detect.go
// Summary: Guesses what non-JSON input looks like for error hints.

package jsonfmt

import "github.com/go-enry/go-enry/v2"

// hintCandidates are the formats users most often paste by accident.
var hintCandidates = []string{"JSON", "YAML", "XML", "TOML", "INI", "CSV", "Markdown"}

// DetectHint classifies input that failed to parse and returns the name
// of the language it resembles, or "" when the classifier is unsure or
// thinks the content is JSON after all (a plain syntax error).
func DetectHint(text string) string {
	if text == "" {
		return ""
	}
	lang, safe := enry.GetLanguageByClassifier([]byte(text), hintCandidates)
	if !safe || lang == "JSON" {
		return ""
	}
	return lang
}
