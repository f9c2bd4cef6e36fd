package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
)

// headerScanRows is how many leading rows are searched before falling back
// to the rest of the sheet.
const headerScanRows = 10

var institutePattern = regexp.MustCompile(`(?i)College:\s*([A-Z]\d{3})\s*(.+?)(?:\s*\(|$)`)

// institute is the identifier found in a sheet's free-form header text.
type institute struct {
	code string
	name string
}

// findInstitute searches cells row by row, left to right, for a
// "College: E001 Name (" style label. The leading rows are searched first.
func findInstitute(grid models.Grid) (institute, bool) {
	limit := headerScanRows
	if limit > len(grid) {
		limit = len(grid)
	}
	if inst, ok := scanInstitute(grid[:limit]); ok {
		return inst, true
	}
	return scanInstitute(grid[limit:])
}

func scanInstitute(rows models.Grid) (institute, bool) {
	for _, row := range rows {
		for _, cell := range row {
			text := cell.String()
			if text == "" || text == "nan" {
				continue
			}
			if m := institutePattern.FindStringSubmatch(text); m != nil {
				return institute{code: m[1], name: strings.TrimSpace(m[2])}, true
			}
		}
	}
	return institute{}, false
}
