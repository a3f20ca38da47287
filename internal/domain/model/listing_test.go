package model_test

import (
	"math"
	"testing"

	model "github.com/okian/homerank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestListing_PricePerArea(t *testing.T) {
	Convey("Given a listing with a usable floor area", t, func() {
		l := model.Listing{Price: 2_400_000, FloorArea: 120}

		Convey("Then the price per area should divide out", func() {
			So(l.PricePerArea(), ShouldEqual, 20_000.0)
		})
	})

	Convey("Given a listing without a usable floor area", t, func() {
		Convey("When the floor area is zero", func() {
			l := model.Listing{Price: 2_400_000, FloorArea: 0}
			So(math.IsInf(l.PricePerArea(), 1), ShouldBeTrue)
		})

		Convey("When the floor area is negative", func() {
			l := model.Listing{Price: 2_400_000, FloorArea: -5}
			So(math.IsInf(l.PricePerArea(), 1), ShouldBeTrue)
		})
	})
}

func TestListing_HasCoordinates(t *testing.T) {
	Convey("Given listings with and without coordinates", t, func() {
		So(model.Listing{Latitude: 56.15, Longitude: 10.20}.HasCoordinates(), ShouldBeTrue)
		So(model.Listing{Latitude: 0, Longitude: 10.20}.HasCoordinates(), ShouldBeFalse)
		So(model.Listing{Latitude: 56.15, Longitude: 0}.HasCoordinates(), ShouldBeFalse)
		So(model.Listing{}.HasCoordinates(), ShouldBeFalse)
	})
}

func TestFactorScores_Components(t *testing.T) {
	Convey("Given a factor-score vector", t, func() {
		var s model.FactorScores

		Convey("When setting every factor through the accessor", func() {
			for i, f := range model.AllFactors() {
				s.SetComponent(f, float64(i+1))
			}

			Convey("Then every component should read back", func() {
				for i, f := range model.AllFactors() {
					So(s.Component(f), ShouldEqual, float64(i+1))
				}
			})
		})

		Convey("When reading an unknown factor", func() {
			So(s.Component(model.Factor("garage")), ShouldEqual, 0.0)
		})
	})
}

func TestAllFactors(t *testing.T) {
	Convey("Given the closed factor set", t, func() {
		factors := model.AllFactors()

		Convey("Then all eight factors should be listed once", func() {
			So(len(factors), ShouldEqual, 8)
			seen := make(map[model.Factor]struct{}, len(factors))
			for _, f := range factors {
				seen[f] = struct{}{}
			}
			So(len(seen), ShouldEqual, 8)
		})
	})
}
