package weights_test

import (
	"errors"
	"testing"

	model "github.com/okian/homerank/internal/domain/model"
	weights "github.com/okian/homerank/internal/domain/weights"
	. "github.com/smartystreets/goconvey/convey"
)

// evenConfig returns a fresh all-12.5 configuration for mutation in tests.
func evenConfig() weights.Config {
	cfg := make(weights.Config, len(model.AllFactors()))
	for _, f := range model.AllFactors() {
		cfg[f] = 12.5
	}
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	Convey("Given a weight configuration", t, func() {
		Convey("When every factor is present and the sum is 100", func() {
			So(evenConfig().Validate(), ShouldBeNil)
		})

		Convey("When the sum is within tolerance of 100", func() {
			cfg := evenConfig()
			cfg[model.FactorEnergy] = 12.505
			cfg[model.FactorTransit] = 12.495

			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("When the sum is 99", func() {
			cfg := evenConfig()
			cfg[model.FactorEnergy] = 11.5

			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, weights.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the sum is 101", func() {
			cfg := evenConfig()
			cfg[model.FactorEnergy] = 13.5

			So(errors.Is(cfg.Validate(), weights.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When a weight is negative", func() {
			cfg := evenConfig()
			cfg[model.FactorEnergy] = -12.5
			cfg[model.FactorTransit] = 37.5 // keep the sum at 100

			So(errors.Is(cfg.Validate(), weights.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When a factor is missing", func() {
			cfg := evenConfig()
			delete(cfg, model.FactorBasement)
			cfg[model.FactorEnergy] = 25.0

			So(errors.Is(cfg.Validate(), weights.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When an unknown factor is present", func() {
			cfg := evenConfig()
			cfg[model.Factor("garage")] = 0.0

			So(errors.Is(cfg.Validate(), weights.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When a zero weight disables a factor", func() {
			cfg := evenConfig()
			cfg[model.FactorBasement] = 0.0
			cfg[model.FactorEnergy] = 25.0

			Convey("Then the configuration should stay valid", func() {
				So(cfg.Validate(), ShouldBeNil)
			})
		})
	})
}

func TestConfig_Signature(t *testing.T) {
	Convey("Given two identical configurations", t, func() {
		a := evenConfig()
		b := evenConfig()

		Convey("Then their signatures should match", func() {
			So(a.Signature(), ShouldEqual, b.Signature())
			So(len(a.Signature()), ShouldEqual, 16)
		})
	})

	Convey("Given configurations differing in one weight", t, func() {
		a := evenConfig()
		b := evenConfig()
		b[model.FactorEnergy] = 13.5
		b[model.FactorTransit] = 11.5

		Convey("Then their signatures should differ", func() {
			So(a.Signature(), ShouldNotEqual, b.Signature())
		})
	})
}

func TestProfiles(t *testing.T) {
	Convey("Given the registered profiles", t, func() {
		names := weights.Profiles()

		Convey("Then all six should be listed in stable order", func() {
			So(names, ShouldResemble, []string{
				"standard",
				"family-friendly",
				"investment",
				"first-time-buyer",
				"retirement",
				"eco-conscious",
			})
		})

		Convey("And every profile should validate", func() {
			for _, name := range names {
				cfg, err := weights.Profile(name)
				So(err, ShouldBeNil)
				So(cfg.Validate(), ShouldBeNil)
			}
		})
	})

	Convey("Given an unregistered profile name", t, func() {
		_, err := weights.Profile("luxury")

		Convey("Then it should wrap the unknown-profile sentinel", func() {
			So(errors.Is(err, weights.ErrUnknownProfile), ShouldBeTrue)
		})
	})

	Convey("Given a resolved profile", t, func() {
		cfg, err := weights.Profile(weights.ProfileStandard)
		So(err, ShouldBeNil)

		Convey("When the caller mutates its copy", func() {
			cfg[model.FactorEnergy] = 99.0

			Convey("Then the registered preset should be unaffected", func() {
				fresh, err := weights.Profile(weights.ProfileStandard)
				So(err, ShouldBeNil)
				So(fresh[model.FactorEnergy], ShouldEqual, 12.5)
			})
		})
	})
}

func TestMatchProfile(t *testing.T) {
	Convey("Given a configuration equal to a preset", t, func() {
		cfg, err := weights.Profile(weights.ProfileInvestment)
		So(err, ShouldBeNil)

		Convey("Then it should match that preset", func() {
			name, ok := weights.MatchProfile(cfg)
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, weights.ProfileInvestment)
		})
	})

	Convey("Given a configuration edited away from a preset", t, func() {
		cfg, err := weights.Profile(weights.ProfileStandard)
		So(err, ShouldBeNil)
		cfg[model.FactorEnergy] = 13.0
		cfg[model.FactorTransit] = 12.0

		Convey("Then it should match nothing", func() {
			_, ok := weights.MatchProfile(cfg)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEngine_Score(t *testing.T) {
	Convey("Given an engine and factor-score vectors", t, func() {
		engine := weights.NewEngine()

		Convey("When two listings differ only in one factor under even weights", func() {
			vectors := map[string]model.FactorScores{
				"lot-small": {Energy: 6, Transit: 4, LotSize: 0, HouseSize: 10, PriceEfficiency: 10, BuildYear: 10, Basement: 10, MarketTiming: 10},
				"lot-large": {Energy: 6, Transit: 4, LotSize: 10, HouseSize: 10, PriceEfficiency: 10, BuildYear: 10, Basement: 10, MarketTiming: 10},
			}

			results, err := engine.Score(vectors, evenConfig())
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 2)

			byID := make(map[string]float64, len(results))
			for _, r := range results {
				byID[r.ListingID] = r.Total
			}

			Convey("Then the totals should differ by exactly the factor's weighted span", func() {
				// A 0 vs 10 gap on a 12.5% factor moves the total by 1.25.
				So(byID["lot-large"]-byID["lot-small"], ShouldAlmostEqual, 1.25, 1e-9)
			})

			Convey("And the results should be ordered by listing id", func() {
				So(results[0].ListingID, ShouldEqual, "lot-large")
				So(results[1].ListingID, ShouldEqual, "lot-small")
			})
		})

		Convey("When every factor sits at its extreme", func() {
			vectors := map[string]model.FactorScores{
				"best":  {Energy: 10, Transit: 10, LotSize: 10, HouseSize: 10, PriceEfficiency: 10, BuildYear: 10, Basement: 10, MarketTiming: 10},
				"worst": {},
			}

			results, err := engine.Score(vectors, evenConfig())
			So(err, ShouldBeNil)

			Convey("Then the totals should span the full 0 to 10 range", func() {
				So(results[0].ListingID, ShouldEqual, "best")
				So(results[0].Total, ShouldAlmostEqual, 10.0, 1e-9)
				So(results[1].Total, ShouldEqual, 0.0)
			})
		})

		Convey("When the configuration zeroes a factor out", func() {
			cfg := evenConfig()
			cfg[model.FactorBasement] = 0.0
			cfg[model.FactorEnergy] = 25.0

			vectors := map[string]model.FactorScores{
				"with":    {Energy: 4, Basement: 10},
				"without": {Energy: 4, Basement: 0},
			}

			results, err := engine.Score(vectors, cfg)
			So(err, ShouldBeNil)

			Convey("Then the zeroed factor should not move the total", func() {
				So(results[0].Total, ShouldEqual, results[1].Total)
			})
		})

		Convey("When the configuration is invalid", func() {
			cfg := evenConfig()
			cfg[model.FactorEnergy] = 50.0 // sum 137.5

			results, err := engine.Score(map[string]model.FactorScores{"x": {}}, cfg)

			Convey("Then no partial output should be produced", func() {
				So(errors.Is(err, weights.ErrInvalidConfig), ShouldBeTrue)
				So(results, ShouldBeNil)
			})
		})

		Convey("When the vector set is empty", func() {
			results, err := engine.Score(nil, evenConfig())

			Convey("Then the result should be empty, not an error", func() {
				So(err, ShouldBeNil)
				So(results, ShouldBeEmpty)
			})
		})
	})
}
