package parser

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/normalize"
)

// SheetParser extracts cutoff records from a single worksheet grid.
type SheetParser struct {
	normalizer *normalize.Normalizer
	logger     *slog.Logger
}

// NewSheetParser creates a SheetParser. A nil logger uses slog.Default().
func NewSheetParser(normalizer *normalize.Normalizer, logger *slog.Logger) *SheetParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetParser{normalizer: normalizer, logger: logger}
}

// ParseSheet returns the records of one sheet. source is the workbook file
// name and drives round detection. A sheet without an institute label or a
// header row yields no records.
func (p *SheetParser) ParseSheet(grid models.Grid, year, source string) []models.Record {
	inst, ok := findInstitute(grid)
	if !ok {
		p.logger.Warn("institute not found", slog.String("source", source))
		return nil
	}
	p.logger.Debug("found institute",
		slog.String("source", source),
		slog.String("code", inst.code),
		slog.String("name", inst.name))

	headerRow := findHeaderRow(grid)
	if headerRow < 0 {
		p.logger.Warn("header row not found", slog.String("source", source))
		return nil
	}

	columns := mapCategoryColumns(grid, headerRow, p.normalizer.ResolveCategory)
	round := DetectRound(source)
	instituteName := p.normalizer.InstituteName(inst.code)

	var records []models.Record
	for rowIdx := headerRow + 1; rowIdx < len(grid); rowIdx++ {
		label := grid.At(rowIdx, 0).String()
		if isPlaceholderLabel(label) {
			continue
		}

		course, ok := p.normalizer.ResolveCourse(label)
		if !ok {
			continue
		}

		for _, column := range columns {
			rank, ok := rankValue(grid.At(rowIdx, column.col))
			if !ok {
				continue
			}
			records = append(records, models.Record{
				Institute:     instituteName,
				InstituteCode: inst.code,
				Course:        course,
				Category:      column.code,
				CutoffRank:    rank,
				Year:          year,
				Round:         round,
			})
		}
	}

	return records
}

// rankValue coerces a cell to a cutoff rank. Values outside (0, MaxRank) are
// rejected and fractional ranks are truncated.
func rankValue(c models.Cell) (int, bool) {
	var v float64
	switch c.Kind {
	case models.CellNumber:
		v = c.Number
	case models.CellText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}

	// NaN fails both comparisons.
	if !(v > 0 && v < models.MaxRank) {
		return 0, false
	}
	rank := int(math.Trunc(v))
	if rank < 1 {
		return 0, false
	}
	return rank, true
}
