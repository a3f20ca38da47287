// Package snapshot builds immutable, identity-hashed dataset snapshots from
// the ingestion collaborator's listing batches.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/okian/homerank/internal/domain/model"
)

// idLength truncates the content hash to a compact hex identifier.
const idLength = 16

// Snapshot is a read-only view of one ingestion cycle's listings plus a
// content-derived identity. No component mutates a snapshot once published;
// the id is the first component of every score-cache key.
type Snapshot struct {
	id       string
	listings []model.Listing
	dropped  int
}

// New builds a snapshot from raw listing records. Listings sharing an id are
// deduplicated (first occurrence wins; the source re-delivers overlapping
// pages between scrape cycles), and records missing the id or the locality
// key are dropped since neither grouping nor identity works without them.
// Listings with missing numeric fields are kept; fallbacks apply per factor
// at scoring time.
func New(listings []model.Listing) *Snapshot {
	kept := make([]model.Listing, 0, len(listings))
	seen := make(map[string]struct{}, len(listings))
	dropped := 0
	for _, l := range listings {
		if l.ID == "" || l.PostalCode == "" {
			dropped++
			continue
		}
		if _, ok := seen[l.ID]; ok {
			dropped++
			continue
		}
		seen[l.ID] = struct{}{}
		kept = append(kept, l)
	}

	return &Snapshot{
		id:       contentID(kept),
		listings: kept,
		dropped:  dropped,
	}
}

// contentID hashes the fields that change between ingestion cycles, so
// re-ingesting identical data keeps the same identity and the score cache
// stays warm, while any price or time-on-market movement produces a new one.
func contentID(listings []model.Listing) string {
	h := sha256.New()
	for _, l := range listings {
		fmt.Fprintf(h, "%s|%.2f|%d\n", l.ID, l.Price, l.DaysListed)
	}
	return hex.EncodeToString(h.Sum(nil))[:idLength]
}

// ID returns the snapshot's content-derived identity.
func (s *Snapshot) ID() string {
	return s.id
}

// Listings returns a copy of the snapshot's listings.
func (s *Snapshot) Listings() []model.Listing {
	out := make([]model.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Len returns the number of listings in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.listings)
}

// Dropped returns how many input records were discarded during the build,
// whether as duplicates or for missing id/locality key.
func (s *Snapshot) Dropped() int {
	return s.dropped
}
