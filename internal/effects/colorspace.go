// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/colorspace.go
// Summary: Color interpolation in RGB, HSL and HSV.
// Usage: Shaders blend colors through the owning effect's ColorSpace.
// Notes: t must already be clamped to [0,1]; endpoints are returned exactly.

package effects

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorSpace selects how two colors are blended.
type ColorSpace int

const (
	ColorSpaceHSL ColorSpace = iota
	ColorSpaceRGB
	ColorSpaceHSV
)

func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceHSL:
		return "hsl"
	case ColorSpaceRGB:
		return "rgb"
	case ColorSpaceHSV:
		return "hsv"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

// ParseColorSpace resolves "rgb", "hsl" or "hsv" (case-insensitive).
func ParseColorSpace(name string) (ColorSpace, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hsl":
		return ColorSpaceHSL, true
	case "rgb":
		return ColorSpaceRGB, true
	case "hsv":
		return ColorSpaceHSV, true
	}
	return ColorSpaceHSL, false
}

// Interpolate blends from towards to by t. Colors without an RGB value
// (tcell.ColorDefault, tcell.ColorReset) cannot be blended and snap halfway.
func (cs ColorSpace) Interpolate(from, to tcell.Color, t float32) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	if from == to {
		return from
	}
	if !from.Valid() || !to.Valid() {
		if t < 0.5 {
			return from
		}
		return to
	}

	a := toColorful(from)
	b := toColorful(to)
	f := float64(t)

	var out colorful.Color
	switch cs {
	case ColorSpaceRGB:
		out = a.BlendRgb(b, f)
	case ColorSpaceHSV:
		h1, s1, v1 := a.Hsv()
		h2, s2, v2 := b.Hsv()
		h1, h2 = alignAchromaticHue(h1, s1, h2, s2)
		out = colorful.Hsv(lerpHue(h1, h2, f), lerp(s1, s2, f), lerp(v1, v2, f))
	default:
		h1, s1, l1 := a.Hsl()
		h2, s2, l2 := b.Hsl()
		h1, h2 = alignAchromaticHue(h1, s1, h2, s2)
		out = colorful.Hsl(lerpHue(h1, h2, f), lerp(s1, s2, f), lerp(l1, l2, f))
	}
	return fromColorful(out)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpHue walks the shortest way around the hue circle.
func lerpHue(h1, h2, t float64) float64 {
	d := math.Mod(h2-h1, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	h := math.Mod(h1+d*t, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// alignAchromaticHue lets a gray endpoint borrow the other endpoint's hue.
func alignAchromaticHue(h1, s1, h2, s2 float64) (float64, float64) {
	const eps = 1e-9
	switch {
	case s1 < eps && s2 >= eps:
		h1 = h2
	case s2 < eps && s1 >= eps:
		h2 = h1
	}
	return h1, h2
}

// blendStyle interpolates the fg and bg of a style, leaving attributes intact.
func blendStyle(cs ColorSpace, style tcell.Style, fg, bg tcell.Color, t float32) tcell.Style {
	curFg, curBg, _ := style.Decompose()
	if fg.Valid() {
		style = style.Foreground(cs.Interpolate(curFg, fg, t))
	}
	if bg.Valid() {
		style = style.Background(cs.Interpolate(curBg, bg, t))
	}
	return style
}
