// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/shader.go
// Summary: Closed set of per-cell shaders dispatched by kind.
// Notes: Shader parameters never change after construction.

package effects

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDuration reports a negative duration or a zero duration where the shader needs time to move.
	ErrInvalidDuration = errors.New("effects: invalid duration")
	// ErrInvalidParameter reports an out-of-range shader parameter.
	ErrInvalidParameter = errors.New("effects: invalid parameter")
)

type shaderKind int

const (
	shaderSleep shaderKind = iota
	shaderFade
	shaderDissolve
	shaderSweep
	shaderSlide
	shaderPaint
	shaderExpand
	shaderCrypt
	shaderRainbow
)

func (k shaderKind) String() string {
	switch k {
	case shaderSleep:
		return "sleep"
	case shaderFade:
		return "fade"
	case shaderDissolve:
		return "dissolve"
	case shaderSweep:
		return "sweep"
	case shaderSlide:
		return "slide"
	case shaderPaint:
		return "paint"
	case shaderExpand:
		return "expand"
	case shaderCrypt:
		return "crypt"
	case shaderRainbow:
		return "rainbow"
	default:
		return fmt.Sprintf("shader(%d)", int(k))
	}
}

// shaderContext carries the per-cell inputs of one shader invocation.
type shaderContext struct {
	alpha  float32 // pattern-mapped, clamped
	global float32 // timer progress, clamped
	area   Rect
	space  ColorSpace
	seed   uint64
}

type shader struct {
	kind     shaderKind
	fade     fadeParams
	dissolve dissolveParams
	sweep    sweepParams
	paint    paintParams
	expand   expandParams
	rainbow  rainbowParams
}

func (s *shader) apply(ctx shaderContext, pos Position, cell Cell) Cell {
	out := s.applyKind(ctx, pos, cell)
	if cell.Ch == 0 {
		// Right half of a wide rune: only the style may change.
		out.Ch = 0
	}
	return out
}

func (s *shader) applyKind(ctx shaderContext, pos Position, cell Cell) Cell {
	switch s.kind {
	case shaderFade:
		return s.fade.apply(ctx, cell)
	case shaderDissolve:
		return s.dissolve.apply(ctx, pos, cell)
	case shaderSweep:
		return s.sweep.applySweep(ctx, pos, cell)
	case shaderSlide:
		return s.sweep.applySlide(ctx, pos, cell)
	case shaderPaint:
		return s.paint.apply(ctx, cell)
	case shaderExpand:
		return s.expand.apply(ctx, pos, cell)
	case shaderCrypt:
		return applyCrypt(ctx, pos, cell)
	case shaderRainbow:
		return s.rainbow.apply(ctx, pos, cell)
	default:
		return cell
	}
}

func validateDuration(name string, d time.Duration, allowZero bool) error {
	if d < 0 || (d == 0 && !allowZero) {
		return fmt.Errorf("%s: duration %v: %w", name, d, ErrInvalidDuration)
	}
	return nil
}

// NewSleep returns an effect that only lets time pass. Useful as a delay in sequences.
func NewSleep(d time.Duration) (*Effect, error) {
	if err := validateDuration("sleep", d, true); err != nil {
		return nil, err
	}
	return newShaderEffect("sleep", shader{kind: shaderSleep}, NewEffectTimer(d, EaseLinear)), nil
}

func init() {
	Register("sleep", func(cfg EffectConfig) (*Effect, error) {
		d, err := requireDuration(cfg, "duration_ms")
		if err != nil {
			return nil, fmt.Errorf("sleep: %w", err)
		}
		return NewSleep(d)
	})
}
