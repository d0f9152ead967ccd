// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/mealmatch/internal/cache"
	"github.com/tomtom215/mealmatch/internal/config"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/recommend"
)

// initResponseCache returns the configured response cache and its closer.
// A disabled cache yields nil and a no-op closer.
func initResponseCache(ctx context.Context, cfg *config.Config) (recommend.ResponseCache, func(), error) {
	if !cfg.Cache.Enabled {
		logging.Info().Msg("Recommendation cache disabled")
		return nil, func() {}, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		logging.Info().Str("addr", cfg.Redis.Addr).Msg("Recommendation cache backed by Redis")
		closer := func() {
			if err := rc.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing Redis cache")
			}
		}
		return recommend.NewRedisResponseCache(rc, logging.Logger()), closer, nil
	default:
		mc := cache.New(cfg.Cache.TTL, cache.WithMaxEntries(cfg.Cache.MaxEntries))
		logging.Info().
			Dur("ttl", cfg.Cache.TTL).
			Int("max_entries", cfg.Cache.MaxEntries).
			Msg("Recommendation cache in memory")
		return recommend.NewMemoryResponseCache(mc), mc.Close, nil
	}
}
