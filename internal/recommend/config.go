// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/mealmatch/internal/config"
)

// Weighting selects how term matrix cells are computed.
type Weighting string

const (
	// WeightingRaw uses occurrence counts.
	WeightingRaw Weighting = "raw"

	// WeightingIDF scales counts by log(N / (df + 1)).
	WeightingIDF Weighting = "idf"
)

// ParseWeighting converts a configuration string into a Weighting.
func ParseWeighting(s string) (Weighting, error) {
	switch w := Weighting(s); w {
	case WeightingRaw, WeightingIDF:
		return w, nil
	default:
		return "", fmt.Errorf("unknown weighting %q (want raw or idf)", s)
	}
}

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Version labels the scoring variant in response metadata.
	// Default: "v2".
	Version string `json:"version"`

	// Weighting selects raw or IDF term weights.
	// Default: idf.
	Weighting Weighting `json:"weighting"`

	// Limits bounds the requested list size.
	Limits LimitsConfig `json:"limits"`

	// Blend sets the tier ratios of the assembler.
	Blend BlendConfig `json:"blend"`

	// Cache controls response caching.
	Cache CacheConfig `json:"cache"`

	// Seed seeds the engine's random source. Zero means 42.
	Seed int64 `json:"seed"`
}

// LimitsConfig bounds the list size.
type LimitsConfig struct {
	// DefaultLimit applies when a request asks for zero or fewer items.
	// Default: 5.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps the requested size.
	// Default: 100.
	MaxLimit int `json:"max_limit"`
}

// BlendConfig holds the assembler ratios.
type BlendConfig struct {
	// ScoreShare of the limit goes to the score tier (at least one slot).
	// Default: 0.8.
	ScoreShare float64 `json:"score_share"`

	// PopularityShare of the limit goes to the popularity tier.
	// Default: 0.15.
	PopularityShare float64 `json:"popularity_share"`

	// FallbackPopularShare of the limit is taken by popularity when there is
	// no usable profile; the rest is random.
	// Default: 0.8.
	FallbackPopularShare float64 `json:"fallback_popular_share"`

	// RepeatRatedWhenExhausted runs the fallback over the whole corpus when
	// the user has rated every recipe. Off by default, in which case such a
	// user receives an empty list.
	RepeatRatedWhenExhausted bool `json:"repeat_rated_when_exhausted"`
}

// CacheConfig controls response caching.
type CacheConfig struct {
	// Enabled turns the response cache on.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the lifetime of a cached response.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// ClearOnRebuild drops every cached response after a model swap.
	// Entries are keyed by model version, so this only frees memory early.
	// Default: true.
	ClearOnRebuild bool `json:"clear_on_rebuild"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   "v2",
		Weighting: WeightingIDF,
		Limits: LimitsConfig{
			DefaultLimit: 5,
			MaxLimit:     100,
		},
		Blend: BlendConfig{
			ScoreShare:           0.8,
			PopularityShare:      0.15,
			FallbackPopularShare: 0.8,
		},
		Cache: CacheConfig{
			Enabled:        true,
			TTL:            5 * time.Minute,
			ClearOnRebuild: true,
		},
		Seed: 42,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if _, err := ParseWeighting(string(c.Weighting)); err != nil {
		return fmt.Errorf("weighting: %w", err)
	}
	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d",
			c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if err := c.Blend.validate(); err != nil {
		return err
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %v", c.Cache.TTL)
	}
	return nil
}

//nolint:gocritic // value receiver is intentional for immutable semantics
func (b BlendConfig) validate() error {
	if b.ScoreShare < 0 || b.ScoreShare > 1 {
		return fmt.Errorf("blend.score_share must be in [0, 1], got %f", b.ScoreShare)
	}
	if b.PopularityShare < 0 || b.PopularityShare > 1 {
		return fmt.Errorf("blend.popularity_share must be in [0, 1], got %f", b.PopularityShare)
	}
	if b.ScoreShare+b.PopularityShare > 1 {
		return fmt.Errorf("blend.score_share + blend.popularity_share must not exceed 1, got %f",
			b.ScoreShare+b.PopularityShare)
	}
	if b.FallbackPopularShare < 0 || b.FallbackPopularShare > 1 {
		return fmt.Errorf("blend.fallback_popular_share must be in [0, 1], got %f", b.FallbackPopularShare)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigFromApp maps the recommend and cache sections of the application
// configuration onto Config. Zero values keep the defaults.
func ConfigFromApp(rc *config.RecommendConfig, cc *config.CacheConfig) (*Config, error) {
	c := DefaultConfig()
	if rc != nil {
		if rc.Version != "" {
			c.Version = rc.Version
		}
		if rc.Weighting != "" {
			w, err := ParseWeighting(rc.Weighting)
			if err != nil {
				return nil, err
			}
			c.Weighting = w
		}
		if rc.DefaultLimit > 0 {
			c.Limits.DefaultLimit = rc.DefaultLimit
		}
		if rc.MaxLimit > 0 {
			c.Limits.MaxLimit = rc.MaxLimit
		}
		if rc.ScoreShare > 0 {
			c.Blend.ScoreShare = rc.ScoreShare
		}
		if rc.PopularityShare > 0 {
			c.Blend.PopularityShare = rc.PopularityShare
		}
		if rc.FallbackPopularShare > 0 {
			c.Blend.FallbackPopularShare = rc.FallbackPopularShare
		}
		if rc.Seed != 0 {
			c.Seed = rc.Seed
		}
		c.Blend.RepeatRatedWhenExhausted = rc.RepeatRatedWhenExhausted
	}
	if cc != nil {
		c.Cache.Enabled = cc.Enabled
		if cc.TTL > 0 {
			c.Cache.TTL = cc.TTL
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
