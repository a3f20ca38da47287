package scoring

import "strings"

// EnergyFallbackScore is the neutral score applied when a rating is absent,
// malformed, or not a recognized class. The listing source occasionally emits
// letters beyond G for what is effectively an A-class home; those encodings
// are not trusted and take the fallback as well.
const EnergyFallbackScore = 3.0

// energyScores maps recognized ordinal classes to fixed point values.
var energyScores = map[string]float64{
	"A": 10,
	"B": 8,
	"C": 6,
	"D": 4,
	"E": 2,
	"F": 0,
	"G": 0,
}

// NormalizeEnergyRating canonicalizes a raw rating string. It returns the
// upper-cased class for recognized values and the empty string otherwise.
func NormalizeEnergyRating(raw string) string {
	r := strings.ToUpper(strings.TrimSpace(raw))
	if r == "" || r == "-" {
		return ""
	}
	if _, ok := energyScores[r]; ok {
		return r
	}
	return ""
}

// EnergyScore converts a raw energy rating to its 0-10 score. It is a pure
// function of the rating and never fails; unrecognized input degrades to
// EnergyFallbackScore.
func EnergyScore(raw string) float64 {
	r := NormalizeEnergyRating(raw)
	if r == "" {
		return EnergyFallbackScore
	}
	return energyScores[r]
}
