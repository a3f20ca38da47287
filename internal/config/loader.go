package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HOMERANK_CONFIG is set
//  3. env (prefix HOMERANK_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HOMERANK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: HOMERANK_ADDR, HOMERANK_WORKER_COUNT, ...
	// Preserve underscores to match the koanf tags on the struct.
	envProvider := env.Provider("HOMERANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "homerank_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.WorkerCount < 1:
		return nil, fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case cfg.ScoreCacheSize < 1:
		return nil, fmt.Errorf("%w: score_cache_size must be positive", ErrInvalidConfig)
	case cfg.MaxRankingsLimit < 1:
		return nil, fmt.Errorf("%w: max_rankings_limit must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
