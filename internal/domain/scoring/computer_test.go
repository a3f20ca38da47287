package scoring_test

import (
	"context"
	"testing"

	geo "github.com/okian/homerank/internal/domain/geo"
	model "github.com/okian/homerank/internal/domain/model"
	scoring "github.com/okian/homerank/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComputer_Compute(t *testing.T) {
	Convey("Given a computer and two listings in the same postal code", t, func() {
		computer := scoring.NewComputer(scoring.WithWorkerCount(2))
		listings := []model.Listing{
			{
				ID:         "lot-small",
				PostalCode: "8000",
				LotArea:    500,
				FloorArea:  120,
				Price:      2_400_000,
				BuildYear:  1995,
				DaysListed: 30,
			},
			{
				ID:         "lot-large",
				PostalCode: "8000",
				LotArea:    1500,
				FloorArea:  120,
				Price:      2_400_000,
				BuildYear:  1995,
				DaysListed: 30,
			},
		}

		Convey("When computing factor scores", func() {
			vectors := computer.Compute(context.Background(), listings)

			Convey("Then the larger lot should score 10 and the smaller 0", func() {
				So(vectors["lot-large"].LotSize, ShouldEqual, 10.0)
				So(vectors["lot-small"].LotSize, ShouldEqual, 0.0)
			})

			Convey("And factors where the listings tie should score 10 for both", func() {
				So(vectors["lot-small"].HouseSize, ShouldEqual, 10.0)
				So(vectors["lot-large"].HouseSize, ShouldEqual, 10.0)
				So(vectors["lot-small"].PriceEfficiency, ShouldEqual, 10.0)
				So(vectors["lot-small"].BuildYear, ShouldEqual, 10.0)
				So(vectors["lot-small"].MarketTiming, ShouldEqual, 10.0)
			})

			Convey("And a missing basement should tie both at 10, not fail", func() {
				So(vectors["lot-small"].Basement, ShouldEqual, 10.0)
				So(vectors["lot-large"].Basement, ShouldEqual, 10.0)
			})

			Convey("And missing coordinates should give a zero transit score", func() {
				So(vectors["lot-small"].Transit, ShouldEqual, 0.0)
				So(vectors["lot-large"].Transit, ShouldEqual, 0.0)
			})

			Convey("And a missing energy rating should take the neutral fallback", func() {
				So(vectors["lot-small"].Energy, ShouldEqual, scoring.EnergyFallbackScore)
			})
		})
	})

	Convey("Given listings spread across postal codes", t, func() {
		computer := scoring.NewComputer()
		listings := []model.Listing{
			{ID: "a1", PostalCode: "8000", FloorArea: 80, Price: 1_000_000},
			{ID: "a2", PostalCode: "8000", FloorArea: 160, Price: 1_000_000},
			{ID: "b1", PostalCode: "8200", FloorArea: 60, Price: 1_000_000},
		}

		Convey("When computing factor scores", func() {
			vectors := computer.Compute(context.Background(), listings)

			Convey("Then relative scores should only compare within the group", func() {
				So(vectors["a2"].HouseSize, ShouldEqual, 10.0)
				So(vectors["a1"].HouseSize, ShouldEqual, 0.0)
				// Alone in 8200: no local disadvantage can be demonstrated.
				So(vectors["b1"].HouseSize, ShouldEqual, 10.0)
			})
		})
	})

	Convey("Given a listing with a zero floor area", t, func() {
		computer := scoring.NewComputer()
		listings := []model.Listing{
			{ID: "priced", PostalCode: "8000", FloorArea: 100, Price: 1_500_000},
			{ID: "no-area", PostalCode: "8000", FloorArea: 0, Price: 1_500_000},
		}

		Convey("When computing factor scores", func() {
			vectors := computer.Compute(context.Background(), listings)

			Convey("Then the undefined price per area should rank least favorable", func() {
				So(vectors["priced"].PriceEfficiency, ShouldEqual, 10.0)
				So(vectors["no-area"].PriceEfficiency, ShouldEqual, 0.0)
			})
		})
	})

	Convey("Given a listing with usable coordinates near a station", t, func() {
		computer := scoring.NewComputer(
			scoring.WithTransitCalculator(geo.NewCalculator(geo.NewDirectory())),
		)
		listings := []model.Listing{
			{ID: "central", PostalCode: "8000", Latitude: 56.1496, Longitude: 10.2045},
		}

		Convey("When computing factor scores", func() {
			vectors := computer.Compute(context.Background(), listings)

			Convey("Then the transit score should be the maximum", func() {
				So(vectors["central"].Transit, ShouldEqual, 10.0)
			})
		})
	})

	Convey("Given an empty snapshot", t, func() {
		computer := scoring.NewComputer()

		Convey("When computing factor scores", func() {
			vectors := computer.Compute(context.Background(), nil)

			Convey("Then the result should be empty", func() {
				So(vectors, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		computer := scoring.NewComputer(scoring.WithWorkerCount(1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		listings := []model.Listing{
			{ID: "x", PostalCode: "8000", FloorArea: 100},
			{ID: "y", PostalCode: "8000", FloorArea: 200},
		}

		Convey("When computing factor scores", func() {
			vectors := computer.Compute(ctx, listings)

			Convey("Then it should return without hanging, one vector per listing", func() {
				So(len(vectors), ShouldEqual, 2)
			})
		})
	})
}
