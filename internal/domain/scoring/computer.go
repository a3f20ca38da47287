// Package scoring derives per-listing, per-factor sub-scores from a dataset
// snapshot. It is a pure transformation: no I/O, no retained state.
package scoring

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/okian/homerank/internal/domain/geo"
	"github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/internal/domain/rank"
	"github.com/okian/homerank/pkg/metrics"
)

// Option applies a configuration option to the Computer.
type Option func(*Computer)

// WithTransitCalculator sets the transit distance calculator.
func WithTransitCalculator(calc *geo.Calculator) Option {
	return func(c *Computer) {
		if calc != nil {
			c.transit = calc
		}
	}
}

// WithWorkerCount sets the fan-out width for the global factor pass.
func WithWorkerCount(count int) Option {
	return func(c *Computer) {
		if count > 0 {
			c.workers = count
		}
	}
}

// Computer produces one FactorScores per listing: two global factors computed
// independently per listing, six relative factors computed per locality group.
type Computer struct {
	transit *geo.Calculator
	workers int
}

// NewComputer creates a factor score computer with configuration options.
func NewComputer(opts ...Option) *Computer {
	c := &Computer{
		transit: geo.NewCalculator(geo.NewDirectory()),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute returns the factor-score vector for every listing, keyed by listing
// id. A malformed individual listing degrades its own factors to the
// documented fallbacks; it never halts processing of sibling listings. The
// global pass fans out across workers since each listing is independent; the
// relative pass partitions by locality key and delegates to dense ranking.
func (c *Computer) Compute(ctx context.Context, listings []model.Listing) map[string]model.FactorScores {
	start := time.Now()
	defer func() {
		metrics.ObserveFactorComputeDuration(float64(time.Since(start).Milliseconds()))
	}()

	vectors := make([]model.FactorScores, len(listings))
	c.computeGlobal(ctx, listings, vectors)

	byID := make(map[string]model.FactorScores, len(listings))
	for i, l := range listings {
		byID[l.ID] = vectors[i]
	}

	c.computeRelative(listings, byID)

	metrics.RecordListingsScored(len(listings))
	return byID
}

// computeGlobal fills the energy and transit components, fanning listings out
// over a bounded worker set. Workers write to disjoint slice slots, so no
// locking is needed.
func (c *Computer) computeGlobal(ctx context.Context, listings []model.Listing, vectors []model.FactorScores) {
	workers := c.workers
	if workers > len(listings) {
		workers = len(listings)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				l := listings[i]
				vectors[i].Energy = EnergyScore(l.EnergyRating)
				vectors[i].Transit = c.transit.Score(l.Latitude, l.Longitude)
			}
		}()
	}

feed:
	for i := range listings {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
}

// computeRelative partitions listings by locality key and scores each of the
// six relative factors with dense ranking inside the partition.
func (c *Computer) computeRelative(listings []model.Listing, byID map[string]model.FactorScores) {
	groups := make(map[string][]model.Listing)
	for _, l := range listings {
		groups[l.PostalCode] = append(groups[l.PostalCode], l)
	}

	for _, group := range groups {
		for _, desc := range relativeDescriptors {
			samples := make([]rank.Sample, len(group))
			for i, l := range group {
				samples[i] = rank.Sample{ID: l.ID, Value: desc.raw(l)}
			}
			for id, score := range rank.DenseScores(samples, desc.direction) {
				v := byID[id]
				v.SetComponent(desc.factor, score)
				byID[id] = v
			}
		}
	}
}
