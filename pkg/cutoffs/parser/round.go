package parser

import (
	"strings"

	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/normalize"
)

// DetectRound derives the counselling round from a file name. Markers are
// checked in order round1, round2, round3/extended, mock; the first present
// wins and R1 is the default.
func DetectRound(source string) models.Round {
	name := normalize.Lower(source)
	switch {
	case strings.Contains(name, "round1"):
		return models.RoundOne
	case strings.Contains(name, "round2"):
		return models.RoundTwo
	case strings.Contains(name, "round3"), strings.Contains(name, "extended"):
		return models.RoundExtended
	case strings.Contains(name, "mock"):
		return models.RoundMock
	default:
		return models.RoundOne
	}
}
