// Package reference holds the versioned lookup tables used to normalize
// institute, course and category labels.
package reference

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed tables.yaml
var defaultTables []byte

// ErrInvalidTables indicates a reference table file is unusable.
var ErrInvalidTables = errors.New("invalid reference tables")

// Institute maps an institute code to its display name.
type Institute struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Course maps a known course spelling to a course code.
type Course struct {
	Label string `yaml:"label"`
	Code  string `yaml:"code"`
}

// Alias maps an abbreviation or fragment to a course code.
type Alias struct {
	Alias string `yaml:"alias"`
	Code  string `yaml:"code"`
}

// Category maps a column header to a category code.
type Category struct {
	Label string `yaml:"label"`
	Code  string `yaml:"code"`
}

// Tables is the immutable reference data. Slices keep file order, which is
// the match order for courses and aliases.
type Tables struct {
	Version       string      `yaml:"version"`
	Institutes    []Institute `yaml:"institutes"`
	Courses       []Course    `yaml:"courses"`
	CourseAliases []Alias     `yaml:"course_aliases"`
	Categories    []Category  `yaml:"categories"`

	institutes map[string]string
	courses    map[string]string
	categories map[string]string
}

// Default returns the tables embedded in the binary.
func Default() *Tables {
	t, err := Parse(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("embedded reference tables: %v", err))
	}
	return t
}

// Load reads tables from a YAML file.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference tables %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates YAML table data.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.index()
	return &t, nil
}

// Validate checks that the tables can drive extraction.
func (t *Tables) Validate() error {
	if len(t.Courses) == 0 {
		return fmt.Errorf("%w: no courses", ErrInvalidTables)
	}
	if len(t.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidTables)
	}
	for i, c := range t.Courses {
		if c.Label == "" || c.Code == "" {
			return fmt.Errorf("%w: course %d has blank label or code", ErrInvalidTables, i)
		}
	}
	for i, a := range t.CourseAliases {
		if a.Alias == "" || a.Code == "" {
			return fmt.Errorf("%w: course alias %d has blank alias or code", ErrInvalidTables, i)
		}
	}
	for i, c := range t.Categories {
		if c.Label == "" || c.Code == "" {
			return fmt.Errorf("%w: category %d has blank label or code", ErrInvalidTables, i)
		}
	}
	for i, inst := range t.Institutes {
		if inst.Code == "" {
			return fmt.Errorf("%w: institute %d has blank code", ErrInvalidTables, i)
		}
	}
	return nil
}

// index builds the exact-match lookups. A repeated key keeps its first
// position in the slice but the last value wins, mirroring how the source
// tables were maintained.
func (t *Tables) index() {
	t.institutes = make(map[string]string, len(t.Institutes))
	for _, inst := range t.Institutes {
		t.institutes[inst.Code] = inst.Name
	}
	t.courses = make(map[string]string, len(t.Courses))
	for _, c := range t.Courses {
		t.courses[c.Label] = c.Code
	}
	t.categories = make(map[string]string, len(t.Categories))
	for _, c := range t.Categories {
		t.categories[c.Label] = c.Code
	}
}

// InstituteName returns the display name for an institute code.
func (t *Tables) InstituteName(code string) (string, bool) {
	name, ok := t.institutes[code]
	return name, ok
}

// CourseCode returns the code for an exact (already uppercased) course label.
func (t *Tables) CourseCode(label string) (string, bool) {
	code, ok := t.courses[label]
	return code, ok
}

// CategoryCode returns the code for an exact category header.
func (t *Tables) CategoryCode(label string) (string, bool) {
	code, ok := t.categories[label]
	return code, ok
}

// PlaceholderName is the display name used for codes missing from the table.
func PlaceholderName(code string) string {
	return "College " + code
}
