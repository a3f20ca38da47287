// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ListingsFile points at the ingestion hand-off JSON loaded at startup.
	// Empty means the service starts with no snapshot and waits for one.
	ListingsFile string `koanf:"listings_file"`

	// WorkerCount sets the fan-out width of the global factor pass.
	WorkerCount int `koanf:"worker_count"`

	// ScoreCacheSize bounds cached weight signatures per snapshot.
	ScoreCacheSize int `koanf:"score_cache_size"`

	// MaxRankingsLimit caps GET /rankings?limit.
	MaxRankingsLimit int `koanf:"max_rankings_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9090",
		ListingsFile:     "",
		WorkerCount:      runtime.NumCPU(),
		ScoreCacheSize:   8,
		MaxRankingsLimit: 500,
	}
}
