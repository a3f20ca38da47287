// Package cache memoizes aggregation results so interactive weight changes
// do not force a full rescore on every request.
package cache

import (
	"sync"

	"github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/internal/domain/weights"
	"github.com/okian/homerank/pkg/metrics"
)

// defaultMaxEntries bounds stored signatures per snapshot. The realistic
// working set is the currently selected profile plus the immediately
// preceding one, so a small constant is plenty.
const defaultMaxEntries = 8

// ComputeFunc produces the results for one (snapshot, configuration) pair.
type ComputeFunc func() ([]model.ScoreResult, error)

// Option applies a configuration option to the ScoreCache.
type Option func(*ScoreCache)

// WithMaxEntries sets the number of signatures retained per snapshot.
func WithMaxEntries(n int) Option {
	return func(c *ScoreCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// ScoreCache memoizes score results keyed by (snapshot id, weight signature).
// A new snapshot id invalidates everything cached for older snapshots; stale
// entries are never served. Concurrent lookups and population are safe;
// racing writers computing the same key redundantly is acceptable since the
// computation is idempotent and side-effect free, but the index itself is
// always mutated under the lock.
type ScoreCache struct {
	mu         sync.Mutex
	maxEntries int

	snapshotID string
	entries    map[string][]model.ScoreResult
	order      []string // signatures, most recently used first
}

// New creates a score cache with configuration options.
func New(opts ...Option) *ScoreCache {
	c := &ScoreCache{
		maxEntries: defaultMaxEntries,
		entries:    make(map[string][]model.ScoreResult),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns the cached results for the exact (snapshot id, weight
// signature) pair, or invokes compute, stores, and returns. Cached result
// slices are shared between callers and must be treated as read-only. Errors
// from compute are returned without being cached, so a corrected
// configuration can retry. The compute callback runs outside the lock.
func (c *ScoreCache) GetOrCompute(snapshotID string, cfg weights.Config, compute ComputeFunc) ([]model.ScoreResult, error) {
	sig := cfg.Signature()

	c.mu.Lock()
	if c.snapshotID != snapshotID {
		// Dataset changed; everything keyed to the old snapshot is stale.
		c.snapshotID = snapshotID
		c.entries = make(map[string][]model.ScoreResult)
		c.order = c.order[:0]
	}
	if results, ok := c.entries[sig]; ok {
		c.touch(sig)
		c.mu.Unlock()
		metrics.RecordScoreCacheHit()
		return results, nil
	}
	c.mu.Unlock()

	metrics.RecordScoreCacheMiss()
	results, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshotID != snapshotID {
		// A newer snapshot arrived while computing; hand back the results
		// without poisoning the fresh cache generation.
		return results, nil
	}
	if existing, ok := c.entries[sig]; ok {
		// A racing writer finished first; serve its copy to keep all callers
		// of this key observing one value.
		c.touch(sig)
		return existing, nil
	}
	c.entries[sig] = results
	c.order = append([]string{sig}, c.order...)
	c.evictOverflow()
	return results, nil
}

// Len returns the number of cached signatures for the current snapshot.
func (c *ScoreCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// touch moves sig to the front of the MRU order. Caller holds c.mu.
func (c *ScoreCache) touch(sig string) {
	for i, s := range c.order {
		if s == sig {
			copy(c.order[1:i+1], c.order[:i])
			c.order[0] = sig
			return
		}
	}
}

// evictOverflow drops least-recently-used signatures beyond the bound.
// Caller holds c.mu.
func (c *ScoreCache) evictOverflow() {
	for len(c.order) > c.maxEntries {
		last := c.order[len(c.order)-1]
		c.order = c.order[:len(c.order)-1]
		delete(c.entries, last)
	}
}
