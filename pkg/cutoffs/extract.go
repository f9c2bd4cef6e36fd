package cutoffs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/normalize"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/parser"
	"github.com/xuri/excelize/v2"
)

var yearPattern = regexp.MustCompile(`20\d{2}`)

// Extractor reads workbooks and parses each of their sheets.
type Extractor struct {
	parser *parser.SheetParser
	logger *slog.Logger
	now    func() time.Time
}

// NewExtractor creates an Extractor from opts.
func NewExtractor(opts Options) *Extractor {
	logger := opts.logger()
	return &Extractor{
		parser: parser.NewSheetParser(normalize.New(opts.tables(), logger), logger),
		logger: logger,
		now:    opts.now,
	}
}

// DetectYear returns the first 20xx year in a file name, or the year of now.
func DetectYear(name string, now time.Time) string {
	if y := yearPattern.FindString(name); y != "" {
		return y
	}
	return strconv.Itoa(now.Year())
}

// ExtractFile extracts the records of every sheet of a workbook, in sheet
// order. Any failure to open or read the workbook discards the whole file.
func (e *Extractor) ExtractFile(path string) (records []models.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = NewFileError(path, "read", fmt.Errorf("%w: %v", ErrInvalidFormat, r))
		}
	}()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewFileError(path, "open", ErrFileNotFound)
	}

	name := filepath.Base(path)
	year := DetectYear(name, e.now())
	logger := e.logger.With(slog.String("file", name))
	logger.Info("processing workbook", slog.String("year", year))

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewFileError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	for _, sheetName := range f.GetSheetList() {
		grid, err := parser.ReadGrid(f, sheetName)
		if err != nil {
			return nil, NewFileError(path, "read", err)
		}
		if grid.IsEmpty() {
			logger.Debug("skipping empty sheet", slog.String("sheet", sheetName))
			continue
		}

		sheetRecords := e.parser.ParseSheet(grid, year, name)
		logger.Debug("parsed sheet",
			slog.String("sheet", sheetName),
			slog.Int("records", len(sheetRecords)))
		records = append(records, sheetRecords...)
	}

	logger.Info("extracted records", slog.Int("records", len(records)))
	return records, nil
}

// ExtractFiles extracts each path in order. A failing file is logged and
// contributes nothing; the others are still processed. processed counts
// every file attempted. Cancelling ctx stops before the next file.
func (e *Extractor) ExtractFiles(ctx context.Context, paths []string) (records []models.Record, processed int, err error) {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return records, processed, err
		}
		fileRecords, err := e.ExtractFile(path)
		processed++
		if err != nil {
			e.logger.Error("failed to process workbook",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		records = append(records, fileRecords...)
	}
	return records, processed, nil
}
