package cutoffs

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves an xlsx with the given sheets, in order, into dir.
func writeWorkbook(t *testing.T, dir, name string, sheets ...sheetFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &values))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func rvceSheet(name string) sheetFixture {
	return sheetFixture{
		name: name,
		rows: [][]interface{}{
			{"College: E005 R.V. College of Engineering ("},
			{"Course Name", "GM", "SCG"},
			{"Computer Science And Engineering", 1500, 3200},
		},
	}
}

func testOptions(buf *bytes.Buffer) Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(buf, nil)),
		Now:    func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) },
	}
}
