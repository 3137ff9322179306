// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx-demo/headless.go
// Summary: Fixed-step run without a terminal, printing the final grid.

package main

import (
	"fmt"
	"io"

	"github.com/framegrace/texelfx/internal/effects"
)

// runHeadless steps the demo by effects.FrameInterval up to frames times,
// stopping early once nothing is running, and writes the last frame.
func runHeadless(d *demo, width, height, frames int, out io.Writer) error {
	if err := d.resize(width, height); err != nil {
		return err
	}
	frame := d.step(0)
	for i := 0; i < frames && d.manager.IsRunning(); i++ {
		frame = d.step(effects.FrameInterval)
	}
	_, err := fmt.Fprintln(out, frame.String())
	return err
}
