// Package topscore extracts the best listing per highlight category from a
// scored snapshot.
package topscore

import "github.com/okian/homerank/internal/domain/model"

// Category identifies one highlight and the listing that wins it.
type Category struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ListingID   string  `json:"listing_id"`
	Value       float64 `json:"value"`
}

// scored pairs a listing with its score result for category extraction.
type scored struct {
	listing model.Listing
	result  model.ScoreResult
}

// categorySpec defines how one category picks its winner.
type categorySpec struct {
	key           string
	name          string
	description   string
	value         func(scored) float64
	lowerIsBetter bool
}

var categorySpecs = []categorySpec{
	{
		key:         "best_overall",
		name:        "Best overall score",
		description: "Highest weighted total under the active configuration",
		value:       func(s scored) float64 { return s.result.Total },
	},
	{
		key:           "cheapest_per_m2",
		name:          "Cheapest per m²",
		description:   "Lowest price per m² of floor area",
		value:         func(s scored) float64 { return s.listing.PricePerArea() },
		lowerIsBetter: true,
	},
	{
		key:         "largest_house",
		name:        "Largest house",
		description: "Largest floor area",
		value:       func(s scored) float64 { return s.listing.FloorArea },
	},
	{
		key:         "newest_build",
		name:        "Newest build",
		description: "Most recent construction year",
		value:       func(s scored) float64 { return float64(s.listing.BuildYear) },
	},
	{
		key:         "best_energy",
		name:        "Best energy class",
		description: "Highest energy sub-score",
		value:       func(s scored) float64 { return s.result.Factors.Energy },
	},
	{
		key:         "largest_lot",
		name:        "Largest lot",
		description: "Largest lot area",
		value:       func(s scored) float64 { return s.listing.LotArea },
	},
	{
		key:         "closest_transit",
		name:        "Closest to transit",
		description: "Highest transit sub-score",
		value:       func(s scored) float64 { return s.result.Factors.Transit },
	},
	{
		key:           "fastest_sale",
		name:          "Fastest mover",
		description:   "Fewest days on market",
		value:         func(s scored) float64 { return float64(s.listing.DaysListed) },
		lowerIsBetter: true,
	},
}

// Compute returns one winner per category. Ties break toward the lower
// listing id so repeated calls over the same snapshot stay deterministic.
// Listings without a score result are skipped; an empty input yields no
// categories.
func Compute(listings []model.Listing, results []model.ScoreResult) []Category {
	resultByID := make(map[string]model.ScoreResult, len(results))
	for _, r := range results {
		resultByID[r.ListingID] = r
	}

	pool := make([]scored, 0, len(listings))
	for _, l := range listings {
		r, ok := resultByID[l.ID]
		if !ok {
			continue
		}
		pool = append(pool, scored{listing: l, result: r})
	}
	if len(pool) == 0 {
		return nil
	}

	out := make([]Category, 0, len(categorySpecs))
	for _, spec := range categorySpecs {
		best := pool[0]
		bestValue := spec.value(best)
		for _, s := range pool[1:] {
			v := spec.value(s)
			better := v > bestValue
			if spec.lowerIsBetter {
				better = v < bestValue
			}
			if better || (v == bestValue && s.listing.ID < best.listing.ID) {
				best = s
				bestValue = v
			}
		}
		out = append(out, Category{
			Key:         spec.key,
			Name:        spec.name,
			Description: spec.description,
			ListingID:   best.listing.ID,
			Value:       bestValue,
		})
	}
	return out
}
