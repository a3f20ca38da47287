// Package repository defines the ranked result store interface and errors.
package repository

import (
	"context"

	"github.com/okian/homerank/internal/domain/model"
)

// Entry represents one ranked listing row.
type Entry struct {
	Rank      int
	ListingID string
	Total     float64
	Factors   model.FactorScores
}

// Store provides read access to the most recently published ranking. Writes
// happen wholesale: every rescore replaces the full ranking, since relative
// factors make single-listing updates meaningless.
type Store interface {
	// Replace swaps in a freshly computed ranking.
	Replace(ctx context.Context, results []model.ScoreResult) error

	// Rank returns the current rank entry for a listing.
	// Returns ErrNotFound if the listing is unknown.
	Rank(ctx context.Context, listingID string) (Entry, error)

	// TopN returns the best-ranked n entries.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of ranked listings.
	Count(ctx context.Context) int
}
