// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/slide.go
// Summary: Slide shader drawing eighth-block glyphs to move an edge with sub-cell precision.
// Notes: Only left-anchored and bottom-anchored block glyphs exist, so the
// opposite edges are drawn with the complementary glyph and swapped colors.

package effects

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

var (
	leftBlocks  = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}
	lowerBlocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

func (p sweepParams) applySlide(ctx shaderContext, pos Position, cell Cell) Cell {
	a := p.window(ctx).Alpha(pos)
	eighths := int(a*8 + 0.5)
	if eighths <= 0 {
		return cell
	}
	_, bg, _ := cell.Style.Decompose()
	if eighths >= 8 {
		return Cell{Ch: ' ', Style: cell.Style.Background(p.color)}
	}
	var glyph rune
	fg, back := p.color, bg
	switch p.direction {
	case LeftToRight:
		glyph = leftBlocks[eighths]
	case RightToLeft:
		glyph = leftBlocks[8-eighths]
		fg, back = bg, p.color
	case UpToDown:
		glyph = lowerBlocks[8-eighths]
		fg, back = bg, p.color
	default:
		glyph = lowerBlocks[eighths]
	}
	return Cell{Ch: glyph, Style: cell.Style.Foreground(fg).Background(back)}
}

// NewSlideOut slides the content away in dir, leaving cells filled with behind.
func NewSlideOut(dir Direction, gradient float32, randomness int, behind tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	return newBandEffect("slide_out", shaderSlide, dir, gradient, randomness, behind, d, easing, false)
}

// NewSlideIn slides the content in from behind, travelling in dir.
func NewSlideIn(dir Direction, gradient float32, randomness int, behind tcell.Color, d time.Duration, easing EasingFunc) (*Effect, error) {
	return newBandEffect("slide_in", shaderSlide, dir, gradient, randomness, behind, d, easing, true)
}

func init() {
	Register("slide_in", bandFactory("slide_in", "behind", NewSlideIn))
	Register("slide_out", bandFactory("slide_out", "behind", NewSlideOut))
}
