// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package config

import "time"

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Redis     RedisConfig     `koanf:"redis"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// DatabaseConfig selects and tunes the ratings store.
type DatabaseConfig struct {
	Driver    string `koanf:"driver"` // duckdb or sqlite
	Path      string `koanf:"path"`   // ":memory:" for an ephemeral store
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // DuckDB threads (0 = NumCPU)
}

// CorpusConfig locates the recipe corpus.
type CorpusConfig struct {
	Path string `koanf:"path"`

	// Watch rebuilds the term matrix when the corpus file changes.
	Watch bool `koanf:"watch"`

	// ReloadDebounce collapses bursts of file events into one rebuild.
	ReloadDebounce time.Duration `koanf:"reload_debounce"`
}

// RecommendConfig configures the scoring engine.
type RecommendConfig struct {
	// Version labels the scoring variant reported in response metadata.
	Version string `koanf:"version"`

	// Weighting is raw or idf.
	Weighting string `koanf:"weighting"`

	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`

	// Blend ratios of the assembler tiers. The random tier takes the remainder.
	ScoreShare      float64 `koanf:"score_share"`
	PopularityShare float64 `koanf:"popularity_share"`

	// FallbackPopularShare is the popular slice of a cold-start response.
	FallbackPopularShare float64 `koanf:"fallback_popular_share"`

	// Seed for the engine's random source.
	Seed int64 `koanf:"seed"`

	// RepeatRatedWhenExhausted lets a user who rated every recipe receive
	// already rated recipes instead of an empty list.
	RepeatRatedWhenExhausted bool `koanf:"repeat_rated_when_exhausted"`

	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// CacheConfig configures the recommendation response cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Backend    string        `koanf:"backend"` // memory or redis
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"` // memory backend only
}

// RedisConfig is used when cache.backend is redis.
type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"`
	KeyPrefix string `koanf:"key_prefix"`
}

// EventsConfig configures rating event distribution.
type EventsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Backend string `koanf:"backend"` // memory or nats

	NATSURL        string `koanf:"nats_url"`
	EmbeddedServer bool   `koanf:"embedded_server"`
	EmbeddedPort   int    `koanf:"embedded_port"`

	RetryCount           int           `koanf:"retry_count"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
	CloseTimeout         time.Duration `koanf:"close_timeout"`

	// Publisher circuit breaker.
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds authentication, CORS and rate limiting settings.
type SecurityConfig struct {
	AuthMode  string        `koanf:"auth_mode"` // none or jwt
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`

	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// RatingsPerMinute throttles rating writes per user id.
	RatingsPerMinute int `koanf:"ratings_per_minute"`
	RatingsBurst     int `koanf:"ratings_burst"`
}

// LoggingConfig mirrors logging.Config without the writer.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether server.environment is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
