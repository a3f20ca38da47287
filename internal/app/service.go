// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/okian/homerank/internal/adapters/repository"
	"github.com/okian/homerank/internal/domain/cache"
	"github.com/okian/homerank/internal/domain/geo"
	"github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/internal/domain/scoring"
	"github.com/okian/homerank/internal/domain/snapshot"
	"github.com/okian/homerank/internal/domain/topscore"
	"github.com/okian/homerank/internal/domain/types"
	"github.com/okian/homerank/internal/domain/weights"
	"github.com/okian/homerank/pkg/logger"
	"github.com/okian/homerank/pkg/metrics"
)

// Service wires the scoring engine together: factor computation over the
// current snapshot, weighted aggregation behind the score cache, and the
// ranked store serving the default view.
type Service struct {
	mu sync.RWMutex

	// Core components
	computer *scoring.Computer
	engine   *weights.Engine
	cache    *cache.ScoreCache
	store    *repository.RankedStore

	// Current dataset snapshot state. The snapshot is read-only once
	// published; rescoring derives everything else from it.
	snapshotID string
	listings   []model.Listing
	vectors    map[string]model.FactorScores

	// Configuration
	workerCount    int
	scoreCacheSize int
	stations       []geo.Station

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the fan-out width of the global factor pass.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithScoreCacheSize bounds cached weight signatures per snapshot.
func WithScoreCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.scoreCacheSize = size
		}
	}
}

// WithStations overrides the built-in station directory.
func WithStations(stations []geo.Station) Option {
	return func(s *Service) {
		if len(stations) > 0 {
			s.stations = stations
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:    runtime.NumCPU(),
		scoreCacheSize: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}

	dirOpts := []geo.Option{}
	if len(s.stations) > 0 {
		dirOpts = append(dirOpts, geo.WithStations(s.stations))
	}
	dir := geo.NewDirectory(dirOpts...)

	s.computer = scoring.NewComputer(
		scoring.WithTransitCalculator(geo.NewCalculator(dir)),
		scoring.WithWorkerCount(s.workerCount),
	)
	s.engine = weights.NewEngine()
	s.cache = cache.New(cache.WithMaxEntries(s.scoreCacheSize))
	s.store = repository.NewRankedStore()

	s.started = true
	s.logger.Info(ctx, "scoring service started",
		logger.Int("workers", s.workerCount),
		logger.Int("scoreCacheSize", s.scoreCacheSize),
		logger.Int("stations", dir.Len()),
	)
	return nil
}

// Stop shuts the service down. All state is in-memory and derived, so there
// is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "scoring service stopped")
}

// PublishSnapshot replaces the current dataset snapshot with a new ingestion
// batch, recomputes factor-score vectors, and refreshes the default ranking.
// The returned id is the snapshot's content hash; publishing identical data
// keeps the id, so cached aggregations stay valid.
func (s *Service) PublishSnapshot(ctx context.Context, raw []model.Listing) (string, error) {
	snap := snapshot.New(raw)
	vectors := s.computer.Compute(ctx, snap.Listings())

	s.mu.Lock()
	s.snapshotID = snap.ID()
	s.listings = snap.Listings()
	s.vectors = vectors
	s.mu.Unlock()

	metrics.RecordSnapshotPublished()
	metrics.UpdateSnapshotListings(snap.Len())
	metrics.RecordSnapshotDropped(snap.Dropped())
	s.logger.Info(ctx, "snapshot published",
		logger.String("snapshotID", snap.ID()),
		logger.Int("listings", snap.Len()),
		logger.Int("dropped", snap.Dropped()),
	)

	// Refresh the default view served by the ranked store.
	standard, err := weights.Profile(weights.ProfileStandard)
	if err != nil {
		return "", err
	}
	results, err := s.score(ctx, standard)
	if err != nil {
		return "", err
	}
	if err := s.store.Replace(ctx, results); err != nil {
		return "", err
	}
	return snap.ID(), nil
}

// score runs the weighted aggregation for the current snapshot through the
// score cache. The compute callback is idempotent and side-effect free, so
// redundant racing computation is harmless.
func (s *Service) score(ctx context.Context, cfg weights.Config) ([]model.ScoreResult, error) {
	s.mu.RLock()
	snapID := s.snapshotID
	vectors := s.vectors
	s.mu.RUnlock()

	if snapID == "" {
		return nil, snapshot.ErrNoSnapshot
	}

	return s.cache.GetOrCompute(snapID, cfg, func() ([]model.ScoreResult, error) {
		start := time.Now()
		results, err := s.engine.Score(vectors, cfg)
		if err != nil {
			return nil, err
		}
		metrics.ObserveRescoreDuration(float64(time.Since(start).Milliseconds()))
		s.logger.Debug(ctx, "rescored snapshot",
			logger.String("snapshotID", snapID),
			logger.String("signature", cfg.Signature()),
			logger.Int("results", len(results)),
		)
		return results, nil
	})
}

// Rankings returns the ranked entries for the given configuration, best
// first, truncated to limit when limit is positive.
func (s *Service) Rankings(ctx context.Context, cfg weights.Config, limit int) ([]types.Entry, error) {
	results, err := s.score(ctx, cfg)
	if err != nil {
		return nil, err
	}
	entries := rankEntries(results)
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// Rank returns one listing's position under the given configuration. The
// standard profile is served from the ranked store; other configurations
// aggregate through the cache and scan.
func (s *Service) Rank(ctx context.Context, listingID string, cfg weights.Config) (types.Entry, error) {
	if name, ok := weights.MatchProfile(cfg); ok && name == weights.ProfileStandard {
		if entry, err := s.store.Rank(ctx, listingID); err == nil {
			return types.Entry{
				Rank:      entry.Rank,
				ListingID: entry.ListingID,
				Total:     entry.Total,
				Factors:   entry.Factors,
			}, nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return types.Entry{}, err
		}
		// Fall through on not-found: the store may lag a fresh snapshot.
	}

	results, err := s.score(ctx, cfg)
	if err != nil {
		return types.Entry{}, err
	}
	for _, e := range rankEntries(results) {
		if e.ListingID == listingID {
			return e, nil
		}
	}
	return types.Entry{}, repository.ErrNotFound
}

// TopScorers returns the per-category best listings under the configuration.
func (s *Service) TopScorers(ctx context.Context, cfg weights.Config) ([]topscore.Category, error) {
	results, err := s.score(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	listings := s.listings
	s.mu.RUnlock()

	return topscore.Compute(listings, results), nil
}

// Profiles returns the registered weight profile names in stable order.
func (s *Service) Profiles() []string {
	return weights.Profiles()
}

// ResolveProfile resolves a named preset to its weight table.
func (s *Service) ResolveProfile(name string) (weights.Config, error) {
	return weights.Profile(name)
}

// SnapshotID returns the current snapshot identity, or empty if none.
func (s *Service) SnapshotID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotID
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"snapshotID":  s.snapshotID,
		"listings":    len(s.listings),
	}
	if s.started {
		stats["cachedSignatures"] = s.cache.Len()
		stats["rankedEntries"] = s.store.Count(context.Background())
	}
	return stats
}

// rankEntries orders results best-first (total DESC, listing id ASC) and
// assigns 1-based positional ranks.
func rankEntries(results []model.ScoreResult) []types.Entry {
	entries := make([]types.Entry, len(results))
	for i, r := range results {
		entries[i] = types.Entry{
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
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
