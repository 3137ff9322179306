// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/expand.go
// Summary: Expand shader revealing content outward from the center of one axis.
// Notes: The area starts covered by blank cells in the flat style. A one-cell
// soft edge grows from the axis center to both edges, the inverse of two
// sweeps closing in from the edges.

package effects

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ExpandAxis selects the axis along which the revealed region grows.
type ExpandAxis int

const (
	ExpandHorizontal ExpandAxis = iota
	ExpandVertical
)

// ParseExpandAxis accepts "horizontal" or "vertical".
func ParseExpandAxis(name string) (ExpandAxis, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "horizontal", "h":
		return ExpandHorizontal, true
	case "vertical", "v":
		return ExpandVertical, true
	}
	return ExpandHorizontal, false
}

type expandParams struct {
	axis  ExpandAxis
	style tcell.Style
}

func (p expandParams) apply(ctx shaderContext, pos Position, cell Cell) Cell {
	coord, origin, length := pos.X, ctx.area.X, ctx.area.Width
	if p.axis == ExpandVertical {
		coord, origin, length = pos.Y, ctx.area.Y, ctx.area.Height
	}
	half := float32(length) / 2
	dist := float32(coord-origin) + 0.5 - half
	if dist < 0 {
		dist = -dist
	}
	revealed := bandAlpha(dist, half, 1, ctx.global)
	if revealed >= 1 {
		return cell
	}
	if revealed <= 0 {
		return Cell{Ch: ' ', Style: p.style}
	}
	flatFg, flatBg, _ := p.style.Decompose()
	curFg, curBg, _ := cell.Style.Decompose()
	out := cell
	out.Style = cell.Style.
		Foreground(ctx.space.Interpolate(flatFg, curFg, revealed)).
		Background(ctx.space.Interpolate(flatBg, curBg, revealed))
	if revealed < 0.5 {
		out.Ch = ' '
	}
	return out
}

// NewExpand reveals the content from the center of the axis outward.
func NewExpand(axis ExpandAxis, style tcell.Style, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("expand", d, false); err != nil {
		return nil, err
	}
	if axis != ExpandHorizontal && axis != ExpandVertical {
		return nil, fmt.Errorf("expand: axis %d: %w", int(axis), ErrInvalidParameter)
	}
	s := shader{kind: shaderExpand, expand: expandParams{axis: axis, style: style}}
	return newShaderEffect("expand", s, NewEffectTimer(d, easing)), nil
}

func init() {
	Register("expand", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("expand: %w", err)
		}
		axisName, err := stringOrDefault(cfg, "axis", "")
		if err != nil {
			return nil, fmt.Errorf("expand: %w", err)
		}
		axis, ok := ParseExpandAxis(axisName)
		if !ok {
			return nil, fmt.Errorf("expand: axis %q: %w", axisName, ErrInvalidParameter)
		}
		style, err := parseStyle(cfg, "style")
		if err != nil {
			return nil, fmt.Errorf("expand: %w", err)
		}
		return NewExpand(axis, style, d, easing)
	})
}
