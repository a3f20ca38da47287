package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/pkg/metrics"
)

// Sorted-slice, in-memory Store implementation.
//
// Ordering: total DESC, then listing id ASC (deterministic). Listings sharing
// a total share the presentation order rule, not the rank number: ranks are
// positional, 1-based.
//
// The store is rebuilt wholesale on Replace and serves reads from an
// immutable slice under an RWMutex, so concurrent readers never observe a
// half-built ranking.
type RankedStore struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[string]int // listing id -> index into entries
}

// NewRankedStore creates an empty ranked result store.
func NewRankedStore() *RankedStore {
	return &RankedStore{
		byID: make(map[string]int),
	}
}

// Replace swaps in a freshly computed ranking.
func (s *RankedStore) Replace(_ context.Context, results []model.ScoreResult) error {
	start := time.Now()

	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{
			ListingID: r.ListingID,
			Total:     r.Total,
			Factors:   r.Factors,
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].ListingID < entries[j].ListingID
	})

	byID := make(map[string]int, len(entries))
	for i := range entries {
		entries[i].Rank = i + 1
		byID[entries[i].ListingID] = i
	}

	s.mu.Lock()
	s.entries = entries
	s.byID = byID
	s.mu.Unlock()

	metrics.ObserveStoreRebuildDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateStoreEntries(len(entries))
	return nil
}

// Rank returns the current rank entry for a listing.
func (s *RankedStore) Rank(_ context.Context, listingID string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[listingID]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return s.entries[i], nil
}

// TopN returns the best-ranked n entries.
func (s *RankedStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out, nil
}

// Count returns the number of ranked listings.
func (s *RankedStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
