package parser

import (
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/normalize"
)

// headerLabels are the first-column values that mark the start of the
// cutoff table.
var headerLabels = map[string]bool{
	"course name": true,
	"course":      true,
	"branch":      true,
	"branch name": true,
}

// placeholderLabels are first-column values in the data region that are not
// course names (repeated headers and separators).
var placeholderLabels = map[string]bool{
	"course name": true,
	"course":      true,
	"--":          true,
	"":            true,
}

// categoryColumn associates a column index with a category code.
type categoryColumn struct {
	col  int
	code string
}

// findHeaderRow returns the index of the first row whose first cell is a
// header label, or -1.
func findHeaderRow(grid models.Grid) int {
	for rowIdx := range grid {
		if headerLabels[normalize.Lower(grid.At(rowIdx, 0).String())] {
			return rowIdx
		}
	}
	return -1
}

// mapCategoryColumns returns the columns after the first whose header cell
// names a known category, in column order.
func mapCategoryColumns(grid models.Grid, headerRow int, resolve func(string) (string, bool)) []categoryColumn {
	var columns []categoryColumn
	for colIdx := 1; colIdx < grid.Width(); colIdx++ {
		if code, ok := resolve(grid.At(headerRow, colIdx).String()); ok {
			columns = append(columns, categoryColumn{col: colIdx, code: code})
		}
	}
	return columns
}

// isPlaceholderLabel reports whether a first-column value should be skipped
// without attempting course resolution.
func isPlaceholderLabel(label string) bool {
	return label == "nan" || placeholderLabels[normalize.Lower(label)]
}
