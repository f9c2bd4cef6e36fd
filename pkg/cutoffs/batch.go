package cutoffs

import (
	"context"
	"log/slog"
	"time"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/output"
)

// Run discovers workbooks, extracts every file in order, and writes the
// consolidated report. It returns ErrNoInputFiles, without writing anything,
// when there is nothing to process.
func Run(ctx context.Context, opts BatchOptions) (*models.Report, error) {
	logger := opts.logger()

	files := opts.Files
	if len(files) == 0 {
		dir := opts.InputDir
		if dir == "" {
			dir = "."
		}
		found, err := DiscoverFiles(dir, opts.pattern())
		if err != nil {
			return nil, err
		}
		files = found
	}
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}
	logger.Info("found workbooks", slog.Int("count", len(files)))

	records, processed, err := NewExtractor(opts.Options).ExtractFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	report := NewReport(records, processed, opts.now())
	outPath := opts.outputPath()
	if err := output.WriteFile(outPath, report); err != nil {
		return nil, err
	}

	logger.Info("extraction complete",
		slog.Int("files", processed),
		slog.Int("records", len(report.Cutoffs)),
		slog.String("output", outPath))
	return report, nil
}

// NewReport wraps records with run metadata.
func NewReport(records []models.Record, filesProcessed int, now time.Time) *models.Report {
	if records == nil {
		records = []models.Record{}
	}
	return &models.Report{
		Metadata: models.Metadata{
			LastUpdated:         now.Format(time.RFC3339),
			TotalFilesProcessed: filesProcessed,
			TotalEntries:        len(records),
		},
		Cutoffs: records,
	}
}
