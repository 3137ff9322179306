// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/content/text.go
// Summary: Lays out plain text into an effects grid.
// Usage: Base content for the demo and for tests that need a styled canvas.

package content

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelfx/internal/effects"
)

const tabWidth = 4

type styledRune struct {
	r     rune
	style tcell.Style
}

// FromText returns a width x height grid filled with style and the text
// written from the top-left corner. Lines and runes past the edge are
// clipped. Wide runes take two cells; the second cell holds a zero rune.
func FromText(text string, width, height int, style tcell.Style) effects.Grid {
	runes := make([]styledRune, 0, len(text))
	for _, r := range text {
		runes = append(runes, styledRune{r: r, style: style})
	}
	return layout(runes, width, height, style)
}

func layout(runes []styledRune, width, height int, fill tcell.Style) effects.Grid {
	g := effects.NewGrid(width, height)
	g.Fill(effects.Cell{Ch: ' ', Style: fill})

	x, y := 0, 0
	for _, sr := range runes {
		if y >= height {
			break
		}
		switch sr.r {
		case '\n':
			x = 0
			y++
			continue
		case '\r':
			x = 0
			continue
		case '\t':
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next; x++ {
				g.SetCell(x, y, effects.Cell{Ch: ' ', Style: sr.style})
			}
			continue
		}
		if unicode.IsControl(sr.r) {
			continue
		}
		w := runewidth.RuneWidth(sr.r)
		if w == 0 {
			continue
		}
		if x+w > width {
			x += w
			continue
		}
		g.SetCell(x, y, effects.Cell{Ch: sr.r, Style: sr.style})
		if w == 2 {
			g.SetCell(x+1, y, effects.Cell{Ch: 0, Style: sr.style})
		}
		x += w
	}
	return g
}
