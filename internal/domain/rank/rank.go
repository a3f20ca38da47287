// Package rank converts raw numeric attributes into relative 0-10 scores
// within one locality group using dense ranking.
package rank

import (
	"math"
	"sort"
)

const maxScore = 10.0

// Direction indicates which end of the raw value range is favorable.
type Direction int

const (
	// HigherIsBetter favors larger raw values (lot size, floor area, build year).
	HigherIsBetter Direction = iota
	// LowerIsBetter favors smaller raw values (price per area, days on market).
	LowerIsBetter
)

// Sample pairs a listing id with one raw factor value.
type Sample struct {
	ID    string
	Value float64
}

// DenseScores assigns a 0-10 score per sample using dense ranking: tied
// values share a rank and the rank sequence has no gaps. The most favorable
// distinct value scores 10 and the least favorable 0, with intermediate ranks
// rescaled linearly. A group with a single distinct value (including a
// single-member group) scores 10 everywhere; no local disadvantage can be
// demonstrated, and the rescale would otherwise divide by zero.
func DenseScores(samples []Sample, dir Direction) map[string]float64 {
	scores := make(map[string]float64, len(samples))
	if len(samples) == 0 {
		return scores
	}

	distinct := make([]float64, 0, len(samples))
	seen := make(map[float64]struct{}, len(samples))
	for _, s := range samples {
		v := normalize(s.Value, dir)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}

	// Sort favorable-first so index 0 becomes dense rank 1.
	sort.Float64s(distinct)
	if dir == HigherIsBetter {
		reverse(distinct)
	}

	rankCount := len(distinct)
	if rankCount <= 1 {
		for _, s := range samples {
			scores[s.ID] = maxScore
		}
		return scores
	}

	rankOf := make(map[float64]int, rankCount)
	for i, v := range distinct {
		rankOf[v] = i + 1
	}

	for _, s := range samples {
		r := rankOf[normalize(s.Value, dir)]
		scores[s.ID] = maxScore * float64(rankCount-r) / float64(rankCount-1)
	}
	return scores
}

// normalize pins NaN to the least favorable end so malformed values never
// poison the distinct-value ordering.
func normalize(v float64, dir Direction) float64 {
	if !math.IsNaN(v) {
		return v
	}
	if dir == HigherIsBetter {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func reverse(vs []float64) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}
