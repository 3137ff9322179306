// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/dissolve.go
// Summary: Dissolve and coalesce shaders hiding or revealing text cell by cell.
// Notes: Each cell's threshold is a pure hash of (seed, x, y), so identical
// tick sequences always produce identical frames.

package effects

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

type dissolveParams struct {
	style    tcell.Style
	useStyle bool
}

func (p dissolveParams) apply(ctx shaderContext, pos Position, cell Cell) Cell {
	if ctx.alpha <= cellUnit(ctx.seed, pos.X, pos.Y) {
		return cell
	}
	cell.Ch = ' '
	if p.useStyle {
		cell.Style = p.style
	}
	return cell
}

// NewDissolve hides the text of every cell in a stable random order.
func NewDissolve(d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("dissolve", d, false); err != nil {
		return nil, err
	}
	return newShaderEffect("dissolve", shader{kind: shaderDissolve}, NewEffectTimer(d, easing)), nil
}

// NewDissolveTo dissolves cells into blank cells drawn with style.
func NewDissolveTo(style tcell.Style, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("dissolve_to", d, false); err != nil {
		return nil, err
	}
	s := shader{kind: shaderDissolve, dissolve: dissolveParams{style: style, useStyle: true}}
	return newShaderEffect("dissolve_to", s, NewEffectTimer(d, easing)), nil
}

// NewCoalesce is a dissolve running backwards: text appears cell by cell.
func NewCoalesce(d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("coalesce", d, false); err != nil {
		return nil, err
	}
	return newShaderEffect("coalesce", shader{kind: shaderDissolve}, NewEffectTimer(d, easing).Mirrored()), nil
}

func init() {
	Register("dissolve", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("dissolve: %w", err)
		}
		return NewDissolve(d, easing)
	})
	Register("dissolve_to", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("dissolve_to: %w", err)
		}
		style, err := parseStyle(cfg, "style")
		if err != nil {
			return nil, fmt.Errorf("dissolve_to: %w", err)
		}
		return NewDissolveTo(style, d, easing)
	})
	Register("coalesce", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("coalesce: %w", err)
		}
		return NewCoalesce(d, easing)
	})
}
