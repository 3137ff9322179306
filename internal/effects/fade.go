// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/fade.go
// Summary: Fade shader interpolating foreground and/or background colors.
// Notes: tcell.ColorDefault as an endpoint stands for the cell's current color,
// which assumes the host re-renders the base content every frame.

package effects

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// FadeTarget selects which colors a fade touches.
type FadeTarget int

const (
	FadeForeground FadeTarget = iota
	FadeBackground
	FadeBoth
)

type fadeParams struct {
	fg     bool
	bg     bool
	fgFrom tcell.Color
	fgTo   tcell.Color
	bgFrom tcell.Color
	bgTo   tcell.Color
}

func (p fadeParams) apply(ctx shaderContext, cell Cell) Cell {
	curFg, curBg, _ := cell.Style.Decompose()
	if p.fg {
		from, to := endpoint(p.fgFrom, curFg), endpoint(p.fgTo, curFg)
		cell.Style = cell.Style.Foreground(ctx.space.Interpolate(from, to, ctx.alpha))
	}
	if p.bg {
		from, to := endpoint(p.bgFrom, curBg), endpoint(p.bgTo, curBg)
		cell.Style = cell.Style.Background(ctx.space.Interpolate(from, to, ctx.alpha))
	}
	return cell
}

func endpoint(c, current tcell.Color) tcell.Color {
	if c == tcell.ColorDefault {
		return current
	}
	return c
}

// NewFade fades the selected colors from one endpoint to the other.
func NewFade(target FadeTarget, from, to tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("fade", d, true); err != nil {
		return nil, err
	}
	p := fadeParams{}
	switch target {
	case FadeForeground:
		p.fg, p.fgFrom, p.fgTo = true, from, to
	case FadeBackground:
		p.bg, p.bgFrom, p.bgTo = true, from, to
	case FadeBoth:
		p.fg, p.fgFrom, p.fgTo = true, from, to
		p.bg, p.bgFrom, p.bgTo = true, from, to
	default:
		return nil, fmt.Errorf("fade: target %d: %w", int(target), ErrInvalidParameter)
	}
	return newShaderEffect("fade", shader{kind: shaderFade, fade: p}, NewEffectTimer(d, easing)), nil
}

// NewFadeTo fades from each cell's current colors to fg/bg. An invalid color
// leaves that channel alone.
func NewFadeTo(fg, bg tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("fade_to", d, true); err != nil {
		return nil, err
	}
	p := fadeParams{
		fg: fg.Valid(), fgFrom: tcell.ColorDefault, fgTo: fg,
		bg: bg.Valid(), bgFrom: tcell.ColorDefault, bgTo: bg,
	}
	return newShaderEffect("fade_to", shader{kind: shaderFade, fade: p}, NewEffectTimer(d, easing)), nil
}

// NewFadeFrom starts at fg/bg and fades to each cell's current colors.
func NewFadeFrom(fg, bg tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("fade_from", d, true); err != nil {
		return nil, err
	}
	p := fadeParams{
		fg: fg.Valid(), fgFrom: fg, fgTo: tcell.ColorDefault,
		bg: bg.Valid(), bgFrom: bg, bgTo: tcell.ColorDefault,
	}
	return newShaderEffect("fade_from", shader{kind: shaderFade, fade: p}, NewEffectTimer(d, easing)), nil
}

func parseFadeTarget(name string) (FadeTarget, bool) {
	switch strings.ToLower(name) {
	case "", "fg", "foreground":
		return FadeForeground, true
	case "bg", "background":
		return FadeBackground, true
	case "both":
		return FadeBoth, true
	}
	return FadeForeground, false
}

func init() {
	Register("fade", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("fade: %w", err)
		}
		targetName, err := stringOrDefault(cfg, "target", "")
		if err != nil {
			return nil, fmt.Errorf("fade: %w", err)
		}
		target, ok := parseFadeTarget(targetName)
		if !ok {
			return nil, fmt.Errorf("fade: target %q: %w", targetName, ErrInvalidParameter)
		}
		from, err := requireColor(cfg, "from")
		if err != nil {
			return nil, fmt.Errorf("fade: %w", err)
		}
		to, err := requireColor(cfg, "to")
		if err != nil {
			return nil, fmt.Errorf("fade: %w", err)
		}
		return NewFade(target, from, to, d, easing)
	})
	fadeEndpoints := func(name string, build func(fg, bg tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error)) Factory {
		return func(cfg EffectConfig) (*Effect, error) {
			d, easing, err := timing(cfg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			fg, err := parseColorOrDefault(cfg, "fg", tcell.ColorDefault)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			bg, err := parseColorOrDefault(cfg, "bg", tcell.ColorDefault)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return build(fg, bg, d, easing)
		}
	}
	Register("fade_to", fadeEndpoints("fade_to", NewFadeTo))
	Register("fade_from", fadeEndpoints("fade_from", NewFadeFrom))
}
