// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import (
	"time"

	"github.com/tomtom215/mealmatch/internal/config"
)

const (
	BackendMemory = "memory"
	BackendNATS   = "nats"
)

// Config configures the event bus, publisher and router.
type Config struct {
	Backend string

	// NATS backend
	NATSURL        string
	EmbeddedServer bool
	EmbeddedPort   int
	StoreDir       string
	MaxReconnects  int
	ReconnectWait  time.Duration
	DurableName    string
	QueueGroup     string

	// memory backend buffer per subscriber
	OutputBuffer int64

	Router  RouterConfig
	Breaker CircuitBreakerConfig
}

// DefaultConfig returns defaults for an in-process bus.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendMemory,
		NATSURL:       "nats://127.0.0.1:4222",
		EmbeddedPort:  4222,
		StoreDir:      "/data/nats/jetstream",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		DurableName:   "mealmatch",
		QueueGroup:    "mealmatch",
		OutputBuffer:  256,
		Router:        DefaultRouterConfig(),
		Breaker:       DefaultCircuitBreakerConfig("event-publisher"),
	}
}

// ConfigFromApp maps the application events section onto Config.
// Zero values keep the defaults.
func ConfigFromApp(cfg *config.EventsConfig) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if cfg.Backend != "" {
		c.Backend = cfg.Backend
	}
	if cfg.NATSURL != "" {
		c.NATSURL = cfg.NATSURL
	}
	c.EmbeddedServer = cfg.EmbeddedServer
	if cfg.EmbeddedPort > 0 {
		c.EmbeddedPort = cfg.EmbeddedPort
	}
	if cfg.RetryCount > 0 {
		c.Router.RetryMaxRetries = cfg.RetryCount
	}
	if cfg.RetryInitialInterval > 0 {
		c.Router.RetryInitialInterval = cfg.RetryInitialInterval
	}
	if cfg.CloseTimeout > 0 {
		c.Router.CloseTimeout = cfg.CloseTimeout
	}
	if cfg.BreakerFailureThreshold > 0 {
		c.Breaker.FailureThreshold = cfg.BreakerFailureThreshold
	}
	if cfg.BreakerTimeout > 0 {
		c.Breaker.Timeout = cfg.BreakerTimeout
	}
	return c
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // Allowed in half-open state
	Interval         time.Duration // Reset interval for counts
	Timeout          time.Duration // Time to stay open
	FailureThreshold uint32        // Failures before opening
}

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}
