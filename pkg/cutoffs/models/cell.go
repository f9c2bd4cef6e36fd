// Package models defines data structures for cutoff extraction.
package models

import "strings"

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	// CellEmpty is a blank or missing cell.
	CellEmpty CellKind = iota
	// CellText is a cell whose value is not numeric.
	CellText
	// CellNumber is a cell whose raw value parses as a number.
	CellNumber
)

// Cell is a single spreadsheet cell value.
type Cell struct {
	// Kind tells which of Text or Number is meaningful.
	Kind CellKind
	// Text is the raw cell string as stored in the workbook.
	Text string
	// Number is the parsed value when Kind is CellNumber.
	Number float64
}

// EmptyCell returns the zero Cell.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// TextCell returns a text Cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric Cell.
func NumberCell(v float64, raw string) Cell {
	return Cell{Kind: CellNumber, Text: raw, Number: v}
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the trimmed textual form of the cell ("" for empty cells).
func (c Cell) String() string {
	if c.Kind == CellEmpty {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// Grid is a sheet as rows of cells. Rows may have different lengths.
type Grid [][]Cell

// At returns the cell at (row, col), or an empty cell when out of range.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return EmptyCell()
	}
	return g[row][col]
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// IsEmpty reports whether the grid has no non-empty cell.
func (g Grid) IsEmpty() bool {
	for _, row := range g {
		for _, c := range row {
			if !c.IsEmpty() {
				return false
			}
		}
	}
	return true
}
