// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import "embed"

//go:embed texelfx.json
var fs embed.FS

// SystemConfig returns the embedded texelfx.json.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelfx.json")
}
