// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/filter.go
// Summary: Cell filters restricting which cells an effect may touch.
// Usage: Attach with Effect.WithFilter; a nil filter matches every cell.
// Notes: Filters are pure predicates and are evaluated for every cell every tick.

package effects

import "github.com/gdamore/tcell/v2"

// CellFilter selects cells by position, current content and the effect area.
type CellFilter func(pos Position, cell Cell, area Rect) bool

// Matches evaluates the filter; a nil filter accepts everything.
func (f CellFilter) Matches(pos Position, cell Cell, area Rect) bool {
	if f == nil {
		return true
	}
	return f(pos, cell, area)
}

// And matches when both filters match.
func (f CellFilter) And(other CellFilter) CellFilter {
	return AllOf(f, other)
}

// Or matches when either filter matches.
func (f CellFilter) Or(other CellFilter) CellFilter {
	return AnyOf(f, other)
}

// Not inverts the filter.
func (f CellFilter) Not() CellFilter {
	return func(pos Position, cell Cell, area Rect) bool {
		return !f.Matches(pos, cell, area)
	}
}

// AllCells matches every cell.
func AllCells() CellFilter {
	return func(Position, Cell, Rect) bool { return true }
}

// TextCells matches cells holding a non-space symbol.
func TextCells() CellFilter {
	return func(_ Position, cell Cell, _ Rect) bool {
		return cell.Ch != ' ' && cell.Ch != 0
	}
}

// FgColor matches cells whose foreground equals c.
func FgColor(c tcell.Color) CellFilter {
	return func(_ Position, cell Cell, _ Rect) bool {
		fg, _, _ := cell.Style.Decompose()
		return fg == c
	}
}

// BgColor matches cells whose background equals c.
func BgColor(c tcell.Color) CellFilter {
	return func(_ Position, cell Cell, _ Rect) bool {
		_, bg, _ := cell.Style.Decompose()
		return bg == c
	}
}

// InsideArea matches cells inside a fixed rect.
func InsideArea(r Rect) CellFilter {
	return func(pos Position, _ Cell, _ Rect) bool {
		return r.Contains(pos)
	}
}

// Inner matches cells inside the effect area shrunk by the margin.
func Inner(m Margin) CellFilter {
	return func(pos Position, _ Cell, area Rect) bool {
		return area.Inset(m).Contains(pos)
	}
}

// Outer matches the border band between the effect area and its inset.
func Outer(m Margin) CellFilter {
	return func(pos Position, _ Cell, area Rect) bool {
		return area.Contains(pos) && !area.Inset(m).Contains(pos)
	}
}

// AllOf matches when every filter matches. Nil entries are ignored.
func AllOf(filters ...CellFilter) CellFilter {
	return func(pos Position, cell Cell, area Rect) bool {
		for _, f := range filters {
			if !f.Matches(pos, cell, area) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches when at least one filter matches.
func AnyOf(filters ...CellFilter) CellFilter {
	return func(pos Position, cell Cell, area Rect) bool {
		for _, f := range filters {
			if f.Matches(pos, cell, area) {
				return true
			}
		}
		return false
	}
}

// NoneOf matches when no filter matches.
func NoneOf(filters ...CellFilter) CellFilter {
	return AnyOf(filters...).Not()
}
