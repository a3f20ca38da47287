package model

// Factor names one of the eight scored listing attributes. The set is closed;
// weight configurations and factor-score vectors are both keyed by it.
type Factor string

// The eight scoring factors.
const (
	FactorEnergy          Factor = "energy"
	FactorTransit         Factor = "transit"
	FactorLotSize         Factor = "lot_size"
	FactorHouseSize       Factor = "house_size"
	FactorPriceEfficiency Factor = "price_efficiency"
	FactorBuildYear       Factor = "build_year"
	FactorBasement        Factor = "basement"
	FactorMarketTiming    Factor = "market_timing"
)

// AllFactors lists every factor in stable declaration order.
func AllFactors() []Factor {
	return []Factor{
		FactorEnergy,
		FactorTransit,
		FactorLotSize,
		FactorHouseSize,
		FactorPriceEfficiency,
		FactorBuildYear,
		FactorBasement,
		FactorMarketTiming,
	}
}

// Component returns the sub-score for the named factor. Unknown factors
// return 0; validation of factor sets happens at the weight-configuration
// boundary, not here.
func (s FactorScores) Component(f Factor) float64 {
	switch f {
	case FactorEnergy:
		return s.Energy
	case FactorTransit:
		return s.Transit
	case FactorLotSize:
		return s.LotSize
	case FactorHouseSize:
		return s.HouseSize
	case FactorPriceEfficiency:
		return s.PriceEfficiency
	case FactorBuildYear:
		return s.BuildYear
	case FactorBasement:
		return s.Basement
	case FactorMarketTiming:
		return s.MarketTiming
	default:
		return 0
	}
}

// SetComponent assigns the sub-score for the named factor.
func (s *FactorScores) SetComponent(f Factor, score float64) {
	switch f {
	case FactorEnergy:
		s.Energy = score
	case FactorTransit:
		s.Transit = score
	case FactorLotSize:
		s.LotSize = score
	case FactorHouseSize:
		s.HouseSize = score
	case FactorPriceEfficiency:
		s.PriceEfficiency = score
	case FactorBuildYear:
		s.BuildYear = score
	case FactorBasement:
		s.Basement = score
	case FactorMarketTiming:
		s.MarketTiming = score
	}
}
