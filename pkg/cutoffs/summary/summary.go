// Package summary computes descriptive statistics over extracted records.
package summary

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/cutoffs-go/pkg/cutoffs/models"
)

// TopN is the length of the institute and course rankings.
const TopN = 10

// Count is a key with its number of records.
type Count struct {
	Key   string
	Count int
}

// RankSpread describes the cutoff ranks of one category.
type RankSpread struct {
	Category string
	Count    int
	Min      float64
	Median   float64
	Max      float64
}

// Summary holds frequency breakdowns of a record set.
type Summary struct {
	Total         int
	ByYear        map[string]int
	ByInstitute   map[string]int
	ByCourse      map[string]int
	ByCategory    map[string]int
	ByRound       map[string]int
	TopInstitutes []Count
	TopCourses    []Count
	Ranks         []RankSpread
}

// Compute builds a Summary of records.
func Compute(records []models.Record) (Summary, error) {
	s := Summary{
		Total:       len(records),
		ByYear:      make(map[string]int),
		ByInstitute: make(map[string]int),
		ByCourse:    make(map[string]int),
		ByCategory:  make(map[string]int),
		ByRound:     make(map[string]int),
	}

	ranks := make(map[string]stats.Float64Data)
	for _, r := range records {
		s.ByYear[r.Year]++
		s.ByInstitute[r.InstituteCode]++
		s.ByCourse[r.Course]++
		s.ByCategory[r.Category]++
		s.ByRound[string(r.Round)]++
		ranks[r.Category] = append(ranks[r.Category], float64(r.CutoffRank))
	}

	s.TopInstitutes = Top(s.ByInstitute, TopN)
	s.TopCourses = Top(s.ByCourse, TopN)

	for _, c := range Sorted(s.ByCategory) {
		spread, err := rankSpread(c.Key, ranks[c.Key])
		if err != nil {
			return s, err
		}
		s.Ranks = append(s.Ranks, spread)
	}
	return s, nil
}

func rankSpread(category string, data stats.Float64Data) (RankSpread, error) {
	spread := RankSpread{Category: category, Count: data.Len()}

	var err error
	if spread.Min, err = stats.Min(data); err != nil {
		return spread, err
	}
	if spread.Median, err = stats.Median(data); err != nil {
		return spread, err
	}
	if spread.Max, err = stats.Max(data); err != nil {
		return spread, err
	}
	return spread, nil
}

// Top returns the n largest counts, ties broken by key.
func Top(counts map[string]int, n int) []Count {
	out := make([]Count, 0, len(counts))
	for k, v := range counts {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Sorted returns counts ordered by key.
func Sorted(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for k, v := range counts {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
