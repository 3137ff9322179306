// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/presets.go
// Summary: Named effect trees stored under the "presets" section.
// Usage: Preset("showcase") returns a map suitable for effects.BuildEffect.

package config

import "sort"

const presetsSection = "presets"

// PresetNames returns the configured preset names in sorted order.
func (c Config) PresetNames() []string {
	section := c.Section(presetsSection)
	names := make([]string, 0, len(section))
	for name, raw := range section {
		if _, ok := raw.(map[string]interface{}); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named effect tree.
func (c Config) Preset(name string) (map[string]interface{}, bool) {
	section := c.Section(presetsSection)
	if section == nil {
		return nil, false
	}
	raw, ok := section[name].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return cloneMap(raw), true
}
