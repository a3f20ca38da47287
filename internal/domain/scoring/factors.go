package scoring

import (
	"github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/internal/domain/rank"
)

// factorKind tags how a factor is evaluated: against the whole dataset
// identically (global) or against the listing's locality group (relative).
type factorKind int

const (
	globalFactor factorKind = iota
	relativeFactor
)

// descriptor carries one factor's evaluation strategy. Keeping the set as a
// closed table avoids scattering per-factor branching across the computer.
type descriptor struct {
	factor    model.Factor
	kind      factorKind
	direction rank.Direction
	raw       func(model.Listing) float64
}

// relativeDescriptors lists the six locality-relative factors with their
// favorable direction and raw-value extractor. Missing raw values have
// already been coerced to the per-factor fallback by the time extraction
// runs: areas and counters default to zero, and a price per area without a
// usable floor area is +Inf so it ranks least favorable.
var relativeDescriptors = []descriptor{
	{
		factor:    model.FactorLotSize,
		kind:      relativeFactor,
		direction: rank.HigherIsBetter,
		raw:       func(l model.Listing) float64 { return l.LotArea },
	},
	{
		factor:    model.FactorHouseSize,
		kind:      relativeFactor,
		direction: rank.HigherIsBetter,
		raw:       func(l model.Listing) float64 { return l.FloorArea },
	},
	{
		factor:    model.FactorPriceEfficiency,
		kind:      relativeFactor,
		direction: rank.LowerIsBetter,
		raw:       func(l model.Listing) float64 { return l.PricePerArea() },
	},
	{
		factor:    model.FactorBuildYear,
		kind:      relativeFactor,
		direction: rank.HigherIsBetter,
		raw:       func(l model.Listing) float64 { return float64(l.BuildYear) },
	},
	{
		factor:    model.FactorBasement,
		kind:      relativeFactor,
		direction: rank.HigherIsBetter,
		raw:       func(l model.Listing) float64 { return l.BasementArea },
	},
	{
		factor:    model.FactorMarketTiming,
		kind:      relativeFactor,
		direction: rank.LowerIsBetter,
		raw:       func(l model.Listing) float64 { return float64(l.DaysListed) },
	},
}
