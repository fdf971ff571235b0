package models

import "strings"

// Grid is the two-dimensional cell view of one uploaded pricelist sheet,
// rows by columns, 0-indexed. Rows may be ragged; Cell is bounds-safe.
// A Grid is treated as immutable once handed to the engine.
type Grid [][]string

func (g Grid) RowCount() int {
	return len(g)
}

// Width returns the widest row, so ragged sheets still get full segment
// spans.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the trimmed cell text, or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return strings.TrimSpace(g[row][col])
}

// NonEmptyCells counts filled cells in a row.
func (g Grid) NonEmptyCells(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	n := 0
	for _, cell := range g[row] {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}
