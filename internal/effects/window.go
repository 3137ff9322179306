// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/window.go
// Summary: Directional gradient band moving across an area as progress advances.
// Usage: Sweep and slide shaders evaluate it directly; SweepPattern wraps it.
// Notes: Cells the band has passed read 1, cells it has not reached read 0.

package effects

import (
	"fmt"
	"strings"
)

// Direction is the travel direction of a sweep band.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
	UpToDown
	DownToUp
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left_to_right"
	case RightToLeft:
		return "right_to_left"
	case UpToDown:
		return "up_to_down"
	case DownToUp:
		return "down_to_up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Flipped returns the opposite direction on the same axis.
func (d Direction) Flipped() Direction {
	switch d {
	case LeftToRight:
		return RightToLeft
	case RightToLeft:
		return LeftToRight
	case UpToDown:
		return DownToUp
	default:
		return UpToDown
	}
}

// Horizontal reports whether the band travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// ParseDirection accepts the String forms plus short aliases ("ltr", "rtl", "down", "up").
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")) {
	case "left_to_right", "ltr", "right":
		return LeftToRight, true
	case "right_to_left", "rtl", "left":
		return RightToLeft, true
	case "up_to_down", "top_to_bottom", "down":
		return UpToDown, true
	case "down_to_up", "bottom_to_top", "up":
		return DownToUp, true
	}
	return LeftToRight, false
}

// SlidingWindowAlpha describes a band of GradientLength cells crossing Area.
// Randomness jitters each cell by up to that many cells along the axis.
type SlidingWindowAlpha struct {
	Direction      Direction
	Area           Rect
	Progress       float32
	GradientLength float32
	Randomness     int
	Seed           uint64
}

// Alpha returns the band alpha at pos.
func (w SlidingWindowAlpha) Alpha(pos Position) float32 {
	p := clamp01(w.Progress)
	switch w.Direction {
	case LeftToRight:
		return w.forward(p, pos.X, w.Area.X, w.Area.Width, pos)
	case RightToLeft:
		return 1 - w.forward(1-p, pos.X, w.Area.X, w.Area.Width, pos)
	case UpToDown:
		return w.forward(p, pos.Y, w.Area.Y, w.Area.Height, pos)
	default:
		return 1 - w.forward(1-p, pos.Y, w.Area.Y, w.Area.Height, pos)
	}
}

func (w SlidingWindowAlpha) forward(p float32, coord, origin, length int, pos Position) float32 {
	jitter := 0
	if w.Randomness > 0 {
		jitter = cellOffset(w.Seed, pos.X, pos.Y, w.Randomness)
	}
	center := float32(coord-origin+jitter) + 0.5
	return bandAlpha(center, float32(length+max(w.Randomness, 0)), w.GradientLength, p)
}

// bandAlpha places a band of width g travelling over [0, extent] at progress p
// and evaluates it at coord. The leading edge starts at 0 and the trailing edge
// ends at extent.
func bandAlpha(coord, extent, g, p float32) float32 {
	if g < 0 {
		g = 0
	}
	start := -g + (extent+g)*p
	if g == 0 {
		if coord < start {
			return 1
		}
		return 0
	}
	end := start + g
	switch {
	case coord < start:
		return 1
	case coord >= end:
		return 0
	default:
		return (end - coord) / g
	}
}
