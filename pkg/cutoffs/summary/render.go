package summary

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var titleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

// Render writes the summary as terminal tables.
func Render(w io.Writer, s Summary) error {
	sections := []struct {
		title  string
		counts []Count
	}{
		{"By year", Sorted(s.ByYear)},
		{"By category", Sorted(s.ByCategory)},
		{"By round", Sorted(s.ByRound)},
		{fmt.Sprintf("Top %d institutes", TopN), s.TopInstitutes},
		{fmt.Sprintf("Top %d courses", TopN), s.TopCourses},
	}

	if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d records", s.Total))); err != nil {
		return err
	}
	for _, section := range sections {
		rows := make([][]string, 0, len(section.counts))
		for _, c := range section.counts {
			rows = append(rows, []string{c.Key, strconv.Itoa(c.Count)})
		}
		if err := writeTable(w, section.title, []string{"KEY", "RECORDS"}, rows); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(s.Ranks))
	for _, r := range s.Ranks {
		rows = append(rows, []string{
			r.Category,
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Min, 'f', 0, 64),
			strconv.FormatFloat(r.Median, 'f', 1, 64),
			strconv.FormatFloat(r.Max, 'f', 0, 64),
		})
	}
	return writeTable(w, "Cutoff ranks by category", []string{"CATEGORY", "RECORDS", "MIN", "MEDIAN", "MAX"}, rows)
}

func writeTable(w io.Writer, title string, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), t.Render())
	return err
}

// Log emits the summary as structured log attributes.
func Log(logger *slog.Logger, s Summary) {
	logger.Info("summary statistics",
		slog.Int("records", s.Total),
		slog.Any("by_year", s.ByYear),
		slog.Any("by_category", s.ByCategory),
		slog.Any("by_round", s.ByRound),
		slog.Any("top_institutes", s.TopInstitutes),
		slog.Any("top_courses", s.TopCourses))
}
