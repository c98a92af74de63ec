// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Copy helper so callers can edit a config before Set.

package config

// Clone copies a config one section deep. Section maps are duplicated,
// so editing the clone never leaks into the live config; values inside a
// section are shared.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, raw := range cfg {
		switch v := raw.(type) {
		case map[string]interface{}:
			out[name] = copySection(v)
		case Section:
			out[name] = copySection(v)
		default:
			out[name] = raw
		}
	}
	return out
}

func copySection(src map[string]interface{}) Section {
	dst := make(Section, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
