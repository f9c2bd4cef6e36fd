package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/normalize"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/reference"
)

func newTestParser(t *testing.T) (*SheetParser, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewSheetParser(normalize.New(reference.Default(), logger), logger), &buf
}

const rvce = "R. V. College of Engineering Bangalore ( PUBLIC UNIV. )"

func TestParseSheetScenario(t *testing.T) {
	p, _ := newTestParser(t)

	grid := models.Grid{
		{models.TextCell("College: E005 R.V. College of Engineering (")},
		{models.TextCell("Course Name"), models.TextCell("GM"), models.TextCell("SCG")},
		{models.TextCell("Computer Science And Engineering"), models.NumberCell(1500, "1500"), models.NumberCell(3200, "3200")},
	}

	got := p.ParseSheet(grid, "2024", "kcet_2024_round1.xlsx")
	want := []models.Record{
		{Institute: rvce, InstituteCode: "E005", Course: "CS", Category: "GM", CutoffRank: 1500, Year: "2024", Round: models.RoundOne},
		{Institute: rvce, InstituteCode: "E005", Course: "CS", Category: "SCG", CutoffRank: 3200, Year: "2024", Round: models.RoundOne},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSheet mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSheetRankFilter(t *testing.T) {
	p, _ := newTestParser(t)

	ranks := []models.Cell{
		models.NumberCell(0, "0"),
		models.NumberCell(-5, "-5"),
		models.NumberCell(1, "1"),
		models.NumberCell(1234.9, "1234.9"),
		models.NumberCell(199999.99, "199999.99"),
		models.NumberCell(200000, "200000"),
		models.NumberCell(250000, "250000"),
		models.NumberCell(0.5, "0.5"),
		models.TextCell("4321"),
		models.TextCell("--"),
		models.TextCell("1,500"),
		models.TextCell("nan"),
		models.EmptyCell(),
	}

	header := []models.Cell{models.TextCell("Course")}
	row := []models.Cell{models.TextCell("CIVIL ENGINEERING")}
	for _, c := range ranks {
		header = append(header, models.TextCell("GM"))
		row = append(row, c)
	}
	grid := models.Grid{
		{models.TextCell("College: E999 Unlisted College")},
		header,
		row,
	}

	records := p.ParseSheet(grid, "2023", "kcet_2023_mock.xlsx")

	var got []int
	for _, r := range records {
		got = append(got, r.CutoffRank)
		assert.Equal(t, "College E999", r.Institute)
		assert.Equal(t, "E999", r.InstituteCode)
		assert.Equal(t, "CE", r.Course)
		assert.Equal(t, models.RoundMock, r.Round)
		assert.Greater(t, r.CutoffRank, 0)
		assert.Less(t, r.CutoffRank, models.MaxRank)
	}
	assert.Equal(t, []int{1, 1234, 199999, 4321}, got)
}

func TestParseSheetSkipsRows(t *testing.T) {
	p, buf := newTestParser(t)

	grid := models.Grid{
		{models.TextCell("Cutoff ranks")},
		{models.TextCell("College: E001 University Visvesvaraya College of Engineering ( PUBLIC UNIV. )")},
		{models.TextCell("Branch Name"), models.TextCell("1G"), models.TextCell("Total"), models.TextCell("GMK")},
		{models.TextCell("Course Name"), models.TextCell("1G"), models.TextCell("Total"), models.TextCell("GMK")},
		{models.TextCell("--"), models.NumberCell(10, "10")},
		{models.TextCell("nan"), models.NumberCell(11, "11")},
		{models.EmptyCell(), models.NumberCell(12, "12")},
		{models.TextCell("Underwater Basket Weaving"), models.NumberCell(13, "13"), models.NumberCell(14, "14"), models.NumberCell(15, "15")},
		{models.TextCell("Mechanical Engineering"), models.NumberCell(100, "100"), models.NumberCell(101, "101"), models.NumberCell(102, "102")},
		{models.TextCell("CSE"), models.EmptyCell(), models.NumberCell(201, "201"), models.NumberCell(202, "202")},
	}

	records := p.ParseSheet(grid, "2025", "kcet_2025_round2.xlsx")

	type key struct {
		course, category string
		rank             int
	}
	var got []key
	for _, r := range records {
		got = append(got, key{r.Course, r.Category, r.CutoffRank})
		assert.Equal(t, models.RoundTwo, r.Round)
	}
	assert.Equal(t, []key{
		{"ME", "1G", 100},
		{"ME", "GMK", 102},
		{"CS", "GMK", 202},
	}, got)
	assert.Contains(t, buf.String(), "unknown course")
}

func TestParseSheetAborts(t *testing.T) {
	p, buf := newTestParser(t)

	noInstitute := models.Grid{
		{models.TextCell("Course Name"), models.TextCell("GM")},
		{models.TextCell("Civil Engineering"), models.NumberCell(100, "100")},
	}
	assert.Empty(t, p.ParseSheet(noInstitute, "2024", "a.xlsx"))
	assert.Contains(t, buf.String(), "institute not found")

	noHeader := models.Grid{
		{models.TextCell("College: E005 R.V. College of Engineering (")},
		{models.TextCell("Programme"), models.TextCell("GM")},
		{models.TextCell("Civil Engineering"), models.NumberCell(100, "100")},
	}
	assert.Empty(t, p.ParseSheet(noHeader, "2024", "a.xlsx"))
	assert.Contains(t, buf.String(), "header row not found")

	assert.Empty(t, p.ParseSheet(models.Grid{}, "2024", "a.xlsx"))
}

func TestRankValue(t *testing.T) {
	tests := []struct {
		cell models.Cell
		rank int
		ok   bool
	}{
		{models.NumberCell(1234.9, "1234.9"), 1234, true},
		{models.NumberCell(1, "1"), 1, true},
		{models.NumberCell(199999, "199999"), 199999, true},
		{models.NumberCell(0, "0"), 0, false},
		{models.NumberCell(200000, "200000"), 0, false},
		{models.NumberCell(0.9, "0.9"), 0, false},
		{models.TextCell(" 77.2 "), 77, true},
		{models.TextCell("abc"), 0, false},
		{models.TextCell("NaN"), 0, false},
		{models.TextCell("inf"), 0, false},
		{models.EmptyCell(), 0, false},
	}

	for _, tt := range tests {
		rank, ok := rankValue(tt.cell)
		assert.Equal(t, tt.ok, ok, "%+v", tt.cell)
		assert.Equal(t, tt.rank, rank, "%+v", tt.cell)
	}
}
