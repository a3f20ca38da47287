// Package model contains domain models passed between layers.
package model

import "math"

// Listing represents one observed property in a dataset snapshot.
// Fields mirror the hand-off schema of the ingestion collaborator.
type Listing struct {
	ID           string  // stable identifier from the listing source
	Address      string  // street address, display only
	City         string  // city name, display only
	PostalCode   string  // locality key; required, sole grouping unit for relative scoring
	Latitude     float64 // WGS84; zero means unknown
	Longitude    float64 // WGS84; zero means unknown
	EnergyRating string  // ordinal energy class as delivered by the source; may be empty or quirky
	FloorArea    float64 // m²
	LotArea      float64 // m²
	BasementArea float64 // m²; zero means no basement
	Rooms        float64
	BuildYear    int
	Price        float64 // total asking price
	DaysListed   int     // days on market
}

// PricePerArea derives the price per m² of floor area. A non-positive floor
// area yields +Inf so the listing ranks least favorable on price efficiency
// instead of dividing by zero.
func (l Listing) PricePerArea() float64 {
	if l.FloorArea <= 0 {
		return math.Inf(1)
	}
	return l.Price / l.FloorArea
}

// HasCoordinates reports whether the listing carries a usable coordinate.
// The listing source emits 0,0 for unknown positions.
func (l Listing) HasCoordinates() bool {
	return l.Latitude != 0 && l.Longitude != 0
}

// FactorScores holds the eight per-factor sub-scores for one listing.
// Every component lies in the closed range [0, 10]. Immutable once produced
// for a given snapshot.
type FactorScores struct {
	Energy          float64 `json:"energy"`
	Transit         float64 `json:"transit"`
	LotSize         float64 `json:"lot_size"`
	HouseSize       float64 `json:"house_size"`
	PriceEfficiency float64 `json:"price_efficiency"`
	BuildYear       float64 `json:"build_year"`
	Basement        float64 `json:"basement"`
	MarketTiming    float64 `json:"market_timing"`
}

// ScoreResult combines one listing's factor scores with the weighted total
// produced under one weight configuration.
type ScoreResult struct {
	ListingID string       `json:"listing_id"`
	Total     float64      `json:"total"`
	Factors   FactorScores `json:"factors"`
}
