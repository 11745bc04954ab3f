package yaff

import "strings"

// Cell is one pixel of a glyph grid: either the paper value (no ink) or a
// 4-bit color index. Index 0 has two source spellings, the legacy ink
// character '@' and the hex digit '0'; both decode to the same Cell.
type Cell int8

// NoInk is the transparent/background cell, written '.' in source.
const NoInk Cell = -1

// Ink reports whether the cell carries a color index.
func (c Cell) Ink() bool {
	return c >= 0
}

// Index returns the 4-bit color index of an inked cell. It is only
// meaningful when Ink is true.
func (c Cell) Index() uint8 {
	return uint8(c)
}

// String renders the cell in its canonical source spelling.
func (c Cell) String() string {
	switch {
	case c < 0:
		return "."
	case c == 0:
		return "@"
	case c < 10:
		return string('0' + byte(c))
	default:
		return string('A' + byte(c) - 10)
	}
}

// decodeCell maps a single source character to a Cell.
func decodeCell(b byte) (Cell, bool) {
	switch {
	case b == '.':
		return NoInk, true
	case b == '@':
		return 0, true
	case b >= '0' && b <= '9':
		return Cell(b - '0'), true
	case b >= 'A' && b <= 'F':
		return Cell(b-'A') + 10, true
	}
	return NoInk, false
}

// Grid is a rectangular matrix of cells, rows × columns. All rows have the
// same length; an empty glyph has zero rows.
type Grid [][]Cell

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Strings renders the grid in its canonical source form, one string per
// row, without visual spacing.
func (g Grid) Strings() []string {
	rows := make([]string, len(g))
	for y, row := range g {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.String())
		}
		rows[y] = sb.String()
	}
	return rows
}
