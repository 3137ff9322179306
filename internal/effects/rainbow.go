// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/rainbow.go
// Summary: Rainbow shader tinting foregrounds with a hue wave that travels diagonally.
// Notes: The tint strength follows sin(pi*alpha), so the effect starts and ends
// on the untouched cell colors.

package effects

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

type rainbowParams struct {
	turns  float32 // hue revolutions over the whole duration
	mix    float32 // peak tint strength
	spread float32 // hue degrees added per diagonal step
}

func (p rainbowParams) apply(ctx shaderContext, pos Position, cell Cell) Cell {
	envelope := float32(math.Sin(math.Pi * float64(ctx.alpha)))
	strength := p.mix * envelope
	// sin(pi) is not exactly zero; below one 8-bit step the tint is invisible.
	if strength < 1.0/512 {
		return cell
	}
	fg, _, _ := cell.Style.Decompose()
	if !fg.Valid() {
		return cell
	}
	hue := math.Mod(float64(360*ctx.alpha*p.turns+p.spread*float32(pos.X+pos.Y)), 360)
	tint := fromColorful(colorful.Hsv(hue, 1, 1))
	cell.Style = cell.Style.Foreground(ctx.space.Interpolate(fg, tint, strength))
	return cell
}

// NewRainbow cycles foreground hues turns times over d, blended in by at most mix.
func NewRainbow(turns, mix float32, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("rainbow", d, false); err != nil {
		return nil, err
	}
	if turns < 0 {
		return nil, fmt.Errorf("rainbow: turns %g: %w", turns, ErrInvalidParameter)
	}
	if mix < 0 || mix > 1 {
		return nil, fmt.Errorf("rainbow: mix %g: %w", mix, ErrInvalidParameter)
	}
	s := shader{kind: shaderRainbow, rainbow: rainbowParams{turns: turns, mix: mix, spread: 360 * 0.1 / (2 * math.Pi)}}
	return newShaderEffect("rainbow", s, NewEffectTimer(d, easing)), nil
}

func init() {
	Register("rainbow", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("rainbow: %w", err)
		}
		turns, err := parseFloatOrDefault(cfg, "turns", 1)
		if err != nil {
			return nil, fmt.Errorf("rainbow: %w", err)
		}
		mix, err := parseFloatOrDefault(cfg, "mix", 0.6)
		if err != nil {
			return nil, fmt.Errorf("rainbow: %w", err)
		}
		return NewRainbow(float32(turns), float32(mix), d, easing)
	})
}
