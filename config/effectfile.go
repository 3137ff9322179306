// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/effectfile.go
// Summary: Loads a single effect tree from a YAML or JSON file.
// Usage: tree, err := LoadEffectFile("intro.yaml"); effects.BuildEffect(tree)

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotEffectTree is returned when a file decodes but has no "effect" key.
var ErrNotEffectTree = errors.New("config: not an effect tree")

// LoadEffectFile decodes path as JSON when it ends in .json and as YAML
// otherwise. The result has the same shape as an entry under "presets".
func LoadEffectFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = decodeJSON(data, &tree)
	} else {
		err = yaml.Unmarshal(data, &tree)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if id, _ := tree["effect"].(string); id == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNotEffectTree)
	}
	return tree, nil
}

// WithPreset returns a copy of c with tree stored as the named preset,
// replacing any existing preset of that name.
func (c Config) WithPreset(name string, tree map[string]interface{}) Config {
	out := Clone(c)
	if out == nil {
		out = make(Config)
	}
	presets := out.Section(presetsSection)
	if presets == nil {
		presets = make(Section)
		out[presetsSection] = presets
	}
	presets[name] = cloneMap(tree)
	return out
}
