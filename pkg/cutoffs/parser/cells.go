// Package parser turns worksheet grids into cutoff records.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every row of a sheet as raw cell values, without
// interpreting any row as a header.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheetName, err)
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx] = parseValue(cellValue)
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

// parseValue classifies a raw cell string. Blank strings are empty cells,
// finite numbers are numeric cells and everything else is text.
func parseValue(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.EmptyCell()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return models.NumberCell(v, s)
	}
	return models.TextCell(s)
}
