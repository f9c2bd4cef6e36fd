package models

// Round identifies an admission counselling pass.
type Round string

const (
	// RoundOne is the first allocation.
	RoundOne Round = "R1"
	// RoundTwo is the second allocation.
	RoundTwo Round = "R2"
	// RoundExtended is the extended or third round.
	RoundExtended Round = "EXT"
	// RoundMock is the mock allotment.
	RoundMock Round = "MOCK"
)

// Record is one closing rank for an institute, course and category in a round.
type Record struct {
	// Institute is the display name of the institute.
	Institute string `json:"institute"`
	// InstituteCode is the letter plus three digit institute code (e.g. E005).
	InstituteCode string `json:"institute_code"`
	// Course is the short course code (e.g. CS).
	Course string `json:"course"`
	// Category is the reservation category code (e.g. GM).
	Category string `json:"category"`
	// CutoffRank is the closing rank, always in (0, MaxRank).
	CutoffRank int `json:"cutoff_rank"`
	// Year is the four digit admission year.
	Year string `json:"year"`
	// Round is the counselling round.
	Round Round `json:"round"`
}

// MaxRank is the exclusive upper bound for a plausible cutoff rank.
const MaxRank = 200000
