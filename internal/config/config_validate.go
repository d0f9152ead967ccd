// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/mealmatch/internal/logging"
)

// minJWTSecretLength is the HS256 key length floor.
const minJWTSecretLength = 32

// Validate checks ranges and enumerations and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateCorpus,
		c.validateRecommend,
		c.validateCache,
		c.validateEvents,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production", "test":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, production or test, got %q", c.Server.Environment)
	}
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case "duckdb", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be duckdb or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DB_THREADS must not be negative, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if c.Corpus.Path == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	if c.Corpus.ReloadDebounce < 0 {
		return fmt.Errorf("CORPUS_RELOAD_DEBOUNCE must not be negative, got %v", c.Corpus.ReloadDebounce)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	switch r.Weighting {
	case "raw", "idf":
	default:
		return fmt.Errorf("RECOMMEND_WEIGHTING must be raw or idf, got %q", r.Weighting)
	}
	if r.DefaultLimit <= 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be positive, got %d", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT (%d) must be >= RECOMMEND_DEFAULT_LIMIT (%d)", r.MaxLimit, r.DefaultLimit)
	}
	if r.ScoreShare < 0 || r.ScoreShare > 1 {
		return fmt.Errorf("RECOMMEND_SCORE_SHARE must be in [0,1], got %v", r.ScoreShare)
	}
	if r.PopularityShare < 0 || r.PopularityShare > 1 {
		return fmt.Errorf("RECOMMEND_POPULARITY_SHARE must be in [0,1], got %v", r.PopularityShare)
	}
	if r.ScoreShare+r.PopularityShare > 1 {
		return fmt.Errorf("score_share + popularity_share must not exceed 1, got %v", r.ScoreShare+r.PopularityShare)
	}
	if r.FallbackPopularShare < 0 || r.FallbackPopularShare > 1 {
		return fmt.Errorf("RECOMMEND_FALLBACK_POPULAR_SHARE must be in [0,1], got %v", r.FallbackPopularShare)
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive, got %v", r.RequestTimeout)
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled, got %v", c.Cache.TTL)
	}
	switch c.Cache.Backend {
	case "memory":
		return nil
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
		return nil
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", c.Cache.Backend)
	}
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	switch c.Events.Backend {
	case "memory":
	case "nats":
		if c.Events.NATSURL == "" && !c.Events.EmbeddedServer {
			return fmt.Errorf("NATS_URL is required when EVENTS_BACKEND=nats without an embedded server")
		}
	default:
		return fmt.Errorf("EVENTS_BACKEND must be memory or nats, got %q", c.Events.Backend)
	}
	if c.Events.RetryCount < 0 {
		return fmt.Errorf("EVENTS_RETRY_COUNT must not be negative, got %d", c.Events.RetryCount)
	}
	if c.Events.BreakerFailureThreshold == 0 {
		return fmt.Errorf("EVENTS_BREAKER_FAILURE_THRESHOLD must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := c.Security
	switch s.AuthMode {
	case "none":
		if c.IsProduction() {
			logging.Warn().Msg("AUTH_MODE=none in production: rating and recommendation routes are unauthenticated")
		}
	case "jwt":
		if len(s.JWTSecret) < minJWTSecretLength {
			return fmt.Errorf("JWT_SECRET must be at least %d characters when AUTH_MODE=jwt", minJWTSecretLength)
		}
		if s.TokenTTL <= 0 {
			return fmt.Errorf("TOKEN_TTL must be positive, got %v", s.TokenTTL)
		}
	default:
		return fmt.Errorf("AUTH_MODE must be none or jwt, got %q", s.AuthMode)
	}
	if !s.RateLimitDisabled {
		if s.RateLimitReqs <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", s.RateLimitReqs)
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", s.RateLimitWindow)
		}
	}
	if s.RatingsPerMinute < 0 || s.RatingsBurst < 0 {
		return fmt.Errorf("RATINGS_PER_MINUTE and RATINGS_BURST must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
