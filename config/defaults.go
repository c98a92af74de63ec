// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the jsonpane configuration file.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"style":  "catppuccin-mocha",
		"indent": 2,
	})
	cfg.RegisterDefaults("debounce", Section{
		"input_ms": 300,
		"paste_ms": 10,
	})
	cfg.RegisterDefaults("history", Section{
		"enabled": true,
		"keep":    100,
	})
	cfg.RegisterDefaults("notify", Section{
		"duration_ms": 2000,
	})
}
