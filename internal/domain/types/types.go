// Package types contains common types used across the application
package types

import "github.com/okian/homerank/internal/domain/model"

// Entry represents one row of a ranked listing result.
type Entry struct {
	Rank      int                `json:"rank"`
	ListingID string             `json:"listing_id"`
	Total     float64            `json:"total"`
	Factors   model.FactorScores `json:"factors"`
}
