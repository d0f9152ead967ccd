// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"bad driver", func(c *Config) { c.Database.Driver = "postgres" }, "DB_DRIVER"},
		{"missing corpus", func(c *Config) { c.Corpus.Path = "" }, "CORPUS_PATH"},
		{"bad weighting", func(c *Config) { c.Recommend.Weighting = "bm25" }, "RECOMMEND_WEIGHTING"},
		{"zero default limit", func(c *Config) { c.Recommend.DefaultLimit = 0 }, "RECOMMEND_DEFAULT_LIMIT"},
		{"max below default", func(c *Config) { c.Recommend.MaxLimit = 2 }, "RECOMMEND_MAX_LIMIT"},
		{"shares above one", func(c *Config) {
			c.Recommend.ScoreShare = 0.9
			c.Recommend.PopularityShare = 0.2
		}, "must not exceed 1"},
		{"negative fallback share", func(c *Config) { c.Recommend.FallbackPopularShare = -0.1 }, "FALLBACK"},
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, "CACHE_BACKEND"},
		{"redis without addr", func(c *Config) {
			c.Cache.Backend = "redis"
			c.Redis.Addr = ""
		}, "REDIS_ADDR"},
		{"cache disabled skips backend", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.Backend = "memcached"
		}, ""},
		{"bad events backend", func(c *Config) { c.Events.Backend = "kafka" }, "EVENTS_BACKEND"},
		{"jwt without secret", func(c *Config) { c.Security.AuthMode = "jwt" }, "JWT_SECRET"},
		{"jwt with secret", func(c *Config) {
			c.Security.AuthMode = "jwt"
			c.Security.JWTSecret = strings.Repeat("s", 32)
		}, ""},
		{"bad auth mode", func(c *Config) { c.Security.AuthMode = "basic" }, "AUTH_MODE"},
		{"bad rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want error containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}
