// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations, first match wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mealmatch/config.yaml",
	"/etc/mealmatch/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Driver:    "duckdb",
			Path:      "/data/mealmatch.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Corpus: CorpusConfig{
			Path:           "/data/recipes_for_cbrs.json",
			Watch:          false,
			ReloadDebounce: 2 * time.Second,
		},
		Recommend: RecommendConfig{
			Version:                  "v2",
			Weighting:                "idf",
			DefaultLimit:             5,
			MaxLimit:                 100,
			ScoreShare:               0.8,
			PopularityShare:          0.15,
			FallbackPopularShare:     0.8,
			Seed:                     42,
			RepeatRatedWhenExhausted: false,
			RequestTimeout:           10 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    "memory",
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
		Redis: RedisConfig{
			Addr:      "127.0.0.1:6379",
			DB:        0,
			KeyPrefix: "mealmatch:",
		},
		Events: EventsConfig{
			Enabled:                 true,
			Backend:                 "memory",
			NATSURL:                 "nats://127.0.0.1:4222",
			EmbeddedServer:          true,
			EmbeddedPort:            4222,
			RetryCount:              3,
			RetryInitialInterval:    100 * time.Millisecond,
			CloseTimeout:            10 * time.Second,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
		},
		Security: SecurityConfig{
			AuthMode:          "none",
			TokenTTL:          24 * time.Hour,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			RatingsPerMinute:  30,
			RatingsBurst:      10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf layers defaults, an optional YAML file and mapped
// environment variables, then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma separated env values for slice fields.
// Values already decoded as slices (from YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Ratings store
	"db_driver":     "database.driver",
	"db_path":       "database.path",
	"db_max_memory": "database.max_memory",
	"db_threads":    "database.threads",

	// Corpus
	"corpus_path":            "corpus.path",
	"corpus_watch":           "corpus.watch",
	"corpus_reload_debounce": "corpus.reload_debounce",

	// Recommendation engine
	"recommend_version":                     "recommend.version",
	"recommend_weighting":                   "recommend.weighting",
	"recommend_default_limit":               "recommend.default_limit",
	"recommend_max_limit":                   "recommend.max_limit",
	"recommend_score_share":                 "recommend.score_share",
	"recommend_popularity_share":            "recommend.popularity_share",
	"recommend_fallback_popular_share":      "recommend.fallback_popular_share",
	"recommend_seed":                        "recommend.seed",
	"recommend_repeat_rated_when_exhausted": "recommend.repeat_rated_when_exhausted",
	"recommend_request_timeout":             "recommend.request_timeout",

	// Cache
	"cache_enabled":     "cache.enabled",
	"cache_backend":     "cache.backend",
	"cache_ttl":         "cache.ttl",
	"cache_max_entries": "cache.max_entries",

	// Redis
	"redis_addr":       "redis.addr",
	"redis_password":   "redis.password",
	"redis_db":         "redis.db",
	"redis_key_prefix": "redis.key_prefix",

	// Events
	"events_enabled":                   "events.enabled",
	"events_backend":                   "events.backend",
	"nats_url":                         "events.nats_url",
	"nats_embedded":                    "events.embedded_server",
	"nats_embedded_port":               "events.embedded_port",
	"events_retry_count":               "events.retry_count",
	"events_retry_interval":            "events.retry_initial_interval",
	"events_close_timeout":             "events.close_timeout",
	"events_breaker_failure_threshold": "events.breaker_failure_threshold",
	"events_breaker_timeout":           "events.breaker_timeout",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"token_ttl":           "security.token_ttl",
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"ratings_per_minute":  "security.ratings_per_minute",
	"ratings_burst":       "security.ratings_burst",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable to its koanf path.
// Unmapped variables return "" and are skipped.
//
//	HTTP_PORT           -> server.port
//	RECOMMEND_WEIGHTING -> recommend.weighting
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchFile calls onChange whenever path is written. The returned stop
// function ends the watch.
//
// The callback runs on the watcher goroutine; callers that rebuild shared
// state must do so with their own synchronization.
func WatchFile(path string, onChange func()) (stop func() error, err error) {
	provider := file.Provider(path)
	err = provider.Watch(func(_ interface{}, werr error) {
		if werr != nil {
			return
		}
		onChange()
	})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return provider.Unwatch, nil
}
