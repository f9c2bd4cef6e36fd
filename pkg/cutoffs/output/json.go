// Package output serializes extraction reports.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
)

// ToJSON serializes a report. HTML characters and non-ASCII text are written
// as-is.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a pretty-printed report to path, creating parent
// directories and replacing any existing file.
func WriteFile(path string, report *models.Report) error {
	data, err := ToJSON(report, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
