// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/paint.go
// Summary: Paint shader applying fixed colors once alpha reaches an onset, or gradually.

package effects

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

type paintParams struct {
	fg      tcell.Color
	bg      tcell.Color
	onset   float32
	gradual bool
}

func (p paintParams) apply(ctx shaderContext, cell Cell) Cell {
	if p.gradual {
		cell.Style = blendStyle(ctx.space, cell.Style, p.fg, p.bg, ctx.alpha)
		return cell
	}
	if ctx.alpha < p.onset {
		return cell
	}
	if p.fg.Valid() {
		cell.Style = cell.Style.Foreground(p.fg)
	}
	if p.bg.Valid() {
		cell.Style = cell.Style.Background(p.bg)
	}
	return cell
}

// NewPaint paints fg/bg for the whole duration. Invalid colors are skipped.
func NewPaint(fg, bg tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	return NewPaintAt(fg, bg, 0, d, easing)
}

// NewPaintAt paints fg/bg once the cell alpha reaches onset.
func NewPaintAt(fg, bg tcell.Color, onset float32, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("paint", d, true); err != nil {
		return nil, err
	}
	if onset < 0 || onset > 1 {
		return nil, fmt.Errorf("paint: onset %g: %w", onset, ErrInvalidParameter)
	}
	s := shader{kind: shaderPaint, paint: paintParams{fg: fg, bg: bg, onset: onset}}
	return newShaderEffect("paint", s, NewEffectTimer(d, easing)), nil
}

// NewPaintGradual blends toward fg/bg as alpha advances.
func NewPaintGradual(fg, bg tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("paint", d, true); err != nil {
		return nil, err
	}
	s := shader{kind: shaderPaint, paint: paintParams{fg: fg, bg: bg, gradual: true}}
	return newShaderEffect("paint", s, NewEffectTimer(d, easing)), nil
}

func init() {
	Register("paint", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("paint: %w", err)
		}
		fg, err := parseColorOrDefault(cfg, "fg", tcell.ColorDefault)
		if err != nil {
			return nil, fmt.Errorf("paint: %w", err)
		}
		bg, err := parseColorOrDefault(cfg, "bg", tcell.ColorDefault)
		if err != nil {
			return nil, fmt.Errorf("paint: %w", err)
		}
		gradual, err := boolOrDefault(cfg, "gradual", false)
		if err != nil {
			return nil, fmt.Errorf("paint: %w", err)
		}
		if gradual {
			return NewPaintGradual(fg, bg, d, easing)
		}
		onset, err := parseFloatOrDefault(cfg, "onset", 0)
		if err != nil {
			return nil, fmt.Errorf("paint: %w", err)
		}
		return NewPaintAt(fg, bg, float32(onset), d, easing)
	})
}
