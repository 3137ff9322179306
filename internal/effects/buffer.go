// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/buffer.go
// Summary: Cell and buffer contracts the effect engine reads from and writes to.
// Usage: Hosts implement Buffer over their own grid or use Grid directly.

package effects

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is a single styled terminal symbol.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Buffer is the mutable grid effects operate on. Out-of-bounds reads return a
// blank cell and out-of-bounds writes are dropped.
type Buffer interface {
	Bounds() Rect
	Cell(x, y int) Cell
	SetCell(x, y int, c Cell)
}

// Grid is a row-major Buffer backed by a slice of rows.
type Grid [][]Cell

// NewGrid allocates a width x height grid of blank cells.
func NewGrid(width, height int) Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := make(Grid, height)
	for y := range g {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
		g[y] = row
	}
	return g
}

// Bounds returns the grid extent anchored at the origin.
func (g Grid) Bounds() Rect {
	if len(g) == 0 {
		return Rect{}
	}
	return Rect{Width: len(g[0]), Height: len(g)}
}

// Cell returns the cell at x,y.
func (g Grid) Cell(x, y int) Cell {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return Cell{Ch: ' ', Style: tcell.StyleDefault}
	}
	return g[y][x]
}

// SetCell writes the cell at x,y.
func (g Grid) SetCell(x, y int, c Cell) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return
	}
	g[y][x] = c
}

// Fill sets every cell to c.
func (g Grid) Fill(c Cell) {
	for y := range g {
		for x := range g[y] {
			g[y][x] = c
		}
	}
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y := range g {
		out[y] = append([]Cell(nil), g[y]...)
	}
	return out
}

// CopyFrom overwrites g with src where both overlap.
func (g Grid) CopyFrom(src Grid) {
	for y := 0; y < len(g) && y < len(src); y++ {
		copy(g[y], src[y])
	}
}

// String renders the symbols row by row, trailing spaces trimmed.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runes := make([]rune, len(row))
		for x, c := range row {
			if c.Ch == 0 {
				runes[x] = ' '
			} else {
				runes[x] = c.Ch
			}
		}
		sb.WriteString(strings.TrimRight(string(runes), " "))
	}
	return sb.String()
}
