package weights

import (
	"sort"

	"github.com/okian/homerank/internal/domain/model"
)

// Engine aggregates factor-score vectors under a weight configuration. It is
// stateless: the configuration is an explicit value on every call, never
// engine-internal mutable state, so identical inputs always produce identical
// outputs.
type Engine struct{}

// NewEngine creates a weighting engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Score aggregates every factor-score vector into one ScoreResult using
// total = Σ score[f] * weight[f] / 100. The configuration is validated before
// any output is produced; an invalid one aborts the whole request so a
// partially-weighted ranking is never presented as valid. Results are ordered
// by listing id for determinism; callers impose their own presentation order.
func (e *Engine) Score(vectors map[string]model.FactorScores, cfg Config) ([]model.ScoreResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]model.ScoreResult, 0, len(vectors))
	for id, v := range vectors {
		total := 0.0
		for f, w := range cfg {
			total += v.Component(f) * w / 100.0
		}
		results = append(results, model.ScoreResult{
			ListingID: id,
			Total:     total,
			Factors:   v,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ListingID < results[j].ListingID
	})
	return results, nil
}
