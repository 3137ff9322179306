// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into texelfx.json when keys are missing.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("demo", Section{
		"preset":        "showcase",
		"frames":        240,
		"speed":         1.0,
		"loop":          false,
		"loop_pause_ms": 1000,
		"color_space":   "hsl",
		"style":         "catppuccin-mocha",
		"log_file":      "",
	})
	cfg.RegisterDefaults("presets", Section{
		"fade_in": map[string]interface{}{
			"effect":      "fade_from",
			"fg":          "#000000",
			"bg":          "#000000",
			"duration_ms": 800,
			"easing":      "out_cubic",
		},
	})
}
