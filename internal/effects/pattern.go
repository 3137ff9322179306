// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/pattern.go
// Summary: Spatial patterns mapping a global alpha to a per-cell alpha.
// Usage: Attach with Effect.WithPattern to stagger any shader across the area.
// Notes: Every pattern is monotonic in the global alpha for a fixed cell.

package effects

import (
	"fmt"
	"math"
	"strings"
)

type patternKind int

const (
	patternIdentity patternKind = iota
	patternSweep
	patternRadial
	patternDiagonal
)

// DiagonalDirection is the travel direction of a diagonal band.
type DiagonalDirection int

const (
	TopLeftToBottomRight DiagonalDirection = iota
	BottomRightToTopLeft
	TopRightToBottomLeft
	BottomLeftToTopRight
)

// ParseDiagonalDirection accepts names like "top_left_to_bottom_right".
func ParseDiagonalDirection(name string) (DiagonalDirection, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")) {
	case "top_left_to_bottom_right", "tl_br":
		return TopLeftToBottomRight, true
	case "bottom_right_to_top_left", "br_tl":
		return BottomRightToTopLeft, true
	case "top_right_to_bottom_left", "tr_bl":
		return TopRightToBottomLeft, true
	case "bottom_left_to_top_right", "bl_tr":
		return BottomLeftToTopRight, true
	}
	return TopLeftToBottomRight, false
}

// Pattern is an immutable spatial alpha strategy.
type Pattern struct {
	kind      patternKind
	direction Direction
	diagonal  DiagonalDirection
	gradient  float32
	centerX   float32
	centerY   float32
}

// IdentityPattern leaves the global alpha unchanged.
func IdentityPattern() Pattern {
	return Pattern{kind: patternIdentity}
}

// SweepPattern reveals the area along dir with a gradient band.
func SweepPattern(dir Direction, gradient float32) Pattern {
	return Pattern{kind: patternSweep, direction: dir, gradient: max(gradient, 0)}
}

// RadialPattern expands from a normalized center point (0..1 on each axis).
func RadialPattern(centerX, centerY, gradient float32) Pattern {
	return Pattern{
		kind:     patternRadial,
		centerX:  clamp01(centerX),
		centerY:  clamp01(centerY),
		gradient: max(gradient, 0),
	}
}

// DiagonalPattern reveals the area along a diagonal axis.
func DiagonalPattern(dir DiagonalDirection, gradient float32) Pattern {
	return Pattern{kind: patternDiagonal, diagonal: dir, gradient: max(gradient, 0)}
}

func (p Pattern) String() string {
	switch p.kind {
	case patternIdentity:
		return "identity"
	case patternSweep:
		return fmt.Sprintf("sweep(%s, %g)", p.direction, p.gradient)
	case patternRadial:
		return fmt.Sprintf("radial(%g,%g, %g)", p.centerX, p.centerY, p.gradient)
	default:
		return fmt.Sprintf("diagonal(%d, %g)", int(p.diagonal), p.gradient)
	}
}

// MapAlpha converts the global alpha into the alpha of the cell at pos.
func (p Pattern) MapAlpha(global float32, pos Position, area Rect) float32 {
	switch p.kind {
	case patternSweep:
		return SlidingWindowAlpha{
			Direction:      p.direction,
			Area:           area,
			Progress:       global,
			GradientLength: p.gradient,
		}.Alpha(pos)
	case patternRadial:
		return p.radialAlpha(clamp01(global), pos, area)
	case patternDiagonal:
		return p.diagonalAlpha(clamp01(global), pos, area)
	default:
		return global
	}
}

// radialAlpha measures cell-center distance from the center; rows count
// double so the expansion looks round on a typical 1:2 terminal cell.
func (p Pattern) radialAlpha(global float32, pos Position, area Rect) float32 {
	cx := float64(area.X) + float64(area.Width)*float64(p.centerX)
	cy := float64(area.Y) + float64(area.Height)*float64(p.centerY)
	dx := float64(pos.X) + 0.5 - cx
	dy := (float64(pos.Y) + 0.5 - cy) * 2
	dist := math.Hypot(dx, dy)

	maxDist := 0.0
	for _, corner := range [4][2]float64{
		{float64(area.X), float64(area.Y)},
		{float64(area.Right()), float64(area.Y)},
		{float64(area.X), float64(area.Bottom())},
		{float64(area.Right()), float64(area.Bottom())},
	} {
		d := math.Hypot(corner[0]-cx, (corner[1]-cy)*2)
		if d > maxDist {
			maxDist = d
		}
	}
	return bandAlpha(float32(dist), float32(maxDist), p.gradient, global)
}

func (p Pattern) diagonalAlpha(global float32, pos Position, area Rect) float32 {
	extent := float32(area.Width + area.Height)
	x := float32(pos.X-area.X) + 0.5
	y := float32(pos.Y-area.Y) + 0.5
	w := float32(area.Width)
	switch p.diagonal {
	case TopLeftToBottomRight:
		return bandAlpha(x+y, extent, p.gradient, global)
	case BottomRightToTopLeft:
		return 1 - bandAlpha(x+y, extent, p.gradient, 1-global)
	case TopRightToBottomLeft:
		return bandAlpha((w-x)+y, extent, p.gradient, global)
	default:
		return 1 - bandAlpha((w-x)+y, extent, p.gradient, 1-global)
	}
}
