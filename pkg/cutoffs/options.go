// Package cutoffs extracts admission cutoff ranks from xlsx workbooks.
package cutoffs

import (
	"log/slog"
	"time"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/reference"
)

// DefaultPattern matches the workbooks picked up from the input directory.
const DefaultPattern = "*.xlsx"

// DefaultOutputPath is where the consolidated report is written.
const DefaultOutputPath = "public/data/cutoffs.json"

// Options configures extraction behavior.
type Options struct {
	// Tables is the reference data. If nil, the embedded tables are used.
	Tables *reference.Tables
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Now supplies the current time for year fallback and report timestamps.
	// If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) tables() *reference.Tables {
	if o.Tables != nil {
		return o.Tables
	}
	return reference.Default()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// BatchOptions configures a batch run.
type BatchOptions struct {
	Options
	// InputDir is searched (non-recursively) for workbooks.
	InputDir string
	// Pattern is the file name glob. Defaults to DefaultPattern.
	Pattern string
	// Files, when set, replaces directory discovery.
	Files []string
	// OutputPath is the report destination. Defaults to DefaultOutputPath.
	OutputPath string
}

func (o BatchOptions) pattern() string {
	if o.Pattern != "" {
		return o.Pattern
	}
	return DefaultPattern
}

func (o BatchOptions) outputPath() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return DefaultOutputPath
}
