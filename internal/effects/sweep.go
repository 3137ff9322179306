// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/sweep.go
// Summary: Sweep shader fading cells toward a color behind a moving gradient band.
// Notes: Sweep-in is sweep-out with the opposite direction and a mirrored timer.
// The band uses the global progress and ignores any effect Pattern.

package effects

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

type sweepParams struct {
	direction  Direction
	gradient   float32
	randomness int
	color      tcell.Color
}

func (p sweepParams) window(ctx shaderContext) SlidingWindowAlpha {
	return SlidingWindowAlpha{
		Direction:      p.direction,
		Area:           ctx.area,
		Progress:       ctx.global,
		GradientLength: p.gradient,
		Randomness:     p.randomness,
		Seed:           ctx.seed,
	}
}

func (p sweepParams) applySweep(ctx shaderContext, pos Position, cell Cell) Cell {
	a := p.window(ctx).Alpha(pos)
	if a <= 0 {
		return cell
	}
	cell.Style = blendStyle(ctx.space, cell.Style, p.color, p.color, a)
	return cell
}

func validateBand(name string, gradient float32, randomness int) error {
	if gradient < 0 {
		return fmt.Errorf("%s: gradient length %g: %w", name, gradient, ErrInvalidParameter)
	}
	if randomness < 0 {
		return fmt.Errorf("%s: randomness %d: %w", name, randomness, ErrInvalidParameter)
	}
	return nil
}

func newBandEffect(name string, kind shaderKind, dir Direction, gradient float32, randomness int, color tcell.Color, d time.Duration, easing EasingFunc, in bool) (*Effect, error) {
	if err := validateDuration(name, d, false); err != nil {
		return nil, err
	}
	if err := validateBand(name, gradient, randomness); err != nil {
		return nil, err
	}
	timer := NewEffectTimer(d, easing)
	if in {
		dir = dir.Flipped()
		timer = timer.Mirrored()
	}
	s := shader{kind: kind, sweep: sweepParams{
		direction:  dir,
		gradient:   gradient,
		randomness: randomness,
		color:      color,
	}}
	return newShaderEffect(name, s, timer), nil
}

// NewSweepOut covers the content with color, travelling in dir.
func NewSweepOut(dir Direction, gradient float32, randomness int, color tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	return newBandEffect("sweep_out", shaderSweep, dir, gradient, randomness, color, d, easing, false)
}

// NewSweepIn starts fully covered by color and reveals the content travelling in dir.
func NewSweepIn(dir Direction, gradient float32, randomness int, color tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	return newBandEffect("sweep_in", shaderSweep, dir, gradient, randomness, color, d, easing, true)
}

// bandFactory reads the shared sweep/slide keys. colorKey names the color parameter.
func bandFactory(name, colorKey string, build func(Direction, float32, int, tcell.Color, time.Duration, EasingFunc) (*Effect, error)) Factory {
	return func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		dir, err := directionOrDefault(cfg, "direction", LeftToRight)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		color, err := requireColor(cfg, colorKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		gradient, err := parseFloatOrDefault(cfg, "gradient", 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		randomness, err := parseIntOrDefault(cfg, "randomness", 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return build(dir, float32(gradient), randomness, color, d, easing)
	}
}

func init() {
	Register("sweep_in", bandFactory("sweep_in", "color", NewSweepIn))
	Register("sweep_out", bandFactory("sweep_out", "color", NewSweepOut))
}
