package weights

import "github.com/okian/homerank/internal/domain/model"

// Registered profile names.
const (
	ProfileStandard       = "standard"
	ProfileFamilyFriendly = "family-friendly"
	ProfileInvestment     = "investment"
	ProfileFirstTimeBuyer = "first-time-buyer"
	ProfileRetirement     = "retirement"
	ProfileEcoConscious   = "eco-conscious"
)

// profileOrder fixes the listing order exposed to callers.
var profileOrder = []string{
	ProfileStandard,
	ProfileFamilyFriendly,
	ProfileInvestment,
	ProfileFirstTimeBuyer,
	ProfileRetirement,
	ProfileEcoConscious,
}

// profiles is the immutable, process-wide preset set. Callers always receive
// clones; the tables themselves are never handed out.
var profiles = map[string]Config{
	ProfileStandard: {
		model.FactorEnergy:          12.5,
		model.FactorTransit:         12.5,
		model.FactorLotSize:         12.5,
		model.FactorHouseSize:       12.5,
		model.FactorPriceEfficiency: 12.5,
		model.FactorBuildYear:       12.5,
		model.FactorBasement:        12.5,
		model.FactorMarketTiming:    12.5,
	},
	ProfileFamilyFriendly: {
		model.FactorHouseSize:       20.0,
		model.FactorLotSize:         20.0,
		model.FactorBuildYear:       15.0,
		model.FactorEnergy:          15.0,
		model.FactorBasement:        10.0,
		model.FactorTransit:         10.0,
		model.FactorPriceEfficiency: 5.0,
		model.FactorMarketTiming:    5.0,
	},
	ProfileInvestment: {
		model.FactorPriceEfficiency: 25.0,
		model.FactorMarketTiming:    20.0,
		model.FactorTransit:         15.0,
		model.FactorEnergy:          15.0,
		model.FactorHouseSize:       10.0,
		model.FactorBuildYear:       10.0,
		model.FactorLotSize:         3.0,
		model.FactorBasement:        2.0,
	},
	ProfileFirstTimeBuyer: {
		model.FactorPriceEfficiency: 30.0,
		model.FactorEnergy:          20.0,
		model.FactorTransit:         15.0,
		model.FactorHouseSize:       15.0,
		model.FactorBuildYear:       10.0,
		model.FactorMarketTiming:    5.0,
		model.FactorLotSize:         3.0,
		model.FactorBasement:        2.0,
	},
	ProfileRetirement: {
		model.FactorEnergy:          25.0,
		model.FactorTransit:         20.0,
		model.FactorBuildYear:       15.0,
		model.FactorHouseSize:       15.0,
		model.FactorPriceEfficiency: 10.0,
		model.FactorMarketTiming:    10.0,
		model.FactorLotSize:         3.0,
		model.FactorBasement:        2.0,
	},
	ProfileEcoConscious: {
		model.FactorEnergy:          35.0,
		model.FactorTransit:         25.0,
		model.FactorBuildYear:       15.0,
		model.FactorPriceEfficiency: 10.0,
		model.FactorHouseSize:       8.0,
		model.FactorMarketTiming:    4.0,
		model.FactorLotSize:         2.0,
		model.FactorBasement:        1.0,
	},
}

// Profiles returns the registered profile names in stable order.
func Profiles() []string {
	out := make([]string, len(profileOrder))
	copy(out, profileOrder)
	return out
}

// Profile resolves a named preset to a copy of its weight table. It wraps
// ErrUnknownProfile when the name is not registered.
func Profile(name string) (Config, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, ErrUnknownProfile
	}
	return p.Clone(), nil
}

// MatchProfile reports which preset, if any, a configuration matches exactly.
// A configuration edited away from a preset is "custom" and only becomes a
// preset again by explicit re-selection.
func MatchProfile(c Config) (string, bool) {
	for _, name := range profileOrder {
		p := profiles[name]
		if len(p) != len(c) {
			continue
		}
		match := true
		for f, w := range p {
			if c[f] != w {
				match = false
				break
			}
		}
		if match {
			return name, true
		}
	}
	return "", false
}
