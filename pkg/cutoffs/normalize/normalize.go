// Package normalize maps free-form spreadsheet labels to canonical codes.
package normalize

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/reference"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer resolves course and category labels against reference tables.
type Normalizer struct {
	tables *reference.Tables
	logger *slog.Logger
}

// New creates a Normalizer. A nil logger uses slog.Default().
func New(tables *reference.Tables, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{tables: tables, logger: logger}
}

// Upper applies full Unicode upper-casing (e.g. "ß" becomes "SS").
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower applies full Unicode lower-casing.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ResolveCourse maps a course label to a course code. Matching is, in order:
// exact label, table label contained in the input or the input contained in a
// table label, then alias contained in the input. Within each stage the first
// entry in table order wins.
func (n *Normalizer) ResolveCourse(raw string) (string, bool) {
	label := strings.TrimSpace(Upper(raw))
	if label == "" {
		return "", false
	}

	if code, ok := n.tables.CourseCode(label); ok {
		return code, true
	}

	for _, c := range n.tables.Courses {
		if strings.Contains(label, c.Label) || strings.Contains(c.Label, label) {
			return n.courseCode(c), true
		}
	}

	for _, a := range n.tables.CourseAliases {
		if strings.Contains(label, a.Alias) {
			return a.Code, true
		}
	}

	n.logger.Warn("unknown course", slog.String("label", raw))
	return "", false
}

// courseCode returns the effective code of a table entry, honouring a later
// duplicate of the same label.
func (n *Normalizer) courseCode(c reference.Course) string {
	if code, ok := n.tables.CourseCode(c.Label); ok {
		return code
	}
	return c.Code
}

// ResolveCategory maps a column header to a category code. Headers must
// match exactly after trimming.
func (n *Normalizer) ResolveCategory(header string) (string, bool) {
	return n.tables.CategoryCode(strings.TrimSpace(header))
}

// InstituteName returns the display name for code, or a placeholder when the
// code is not in the table.
func (n *Normalizer) InstituteName(code string) string {
	if name, ok := n.tables.InstituteName(code); ok {
		return name
	}
	return reference.PlaceholderName(code)
}
