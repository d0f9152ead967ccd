// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mealmatch/internal/config"
	"github.com/tomtom215/mealmatch/internal/recommend"
	ws "github.com/tomtom215/mealmatch/internal/websocket"
)

func TestInitResponseCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg := &config.Config{Cache: config.CacheConfig{Enabled: false}}
		rc, closer, err := initResponseCache(context.Background(), cfg)
		if err != nil {
			t.Fatalf("initResponseCache() error = %v", err)
		}
		defer closer()
		if rc != nil {
			t.Errorf("cache = %v, want nil", rc)
		}
	})

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Cache: config.CacheConfig{Enabled: true, Backend: "memory", TTL: time.Minute, MaxEntries: 10}}
		rc, closer, err := initResponseCache(context.Background(), cfg)
		if err != nil {
			t.Fatalf("initResponseCache() error = %v", err)
		}
		defer closer()

		ctx := context.Background()
		rc.Set(ctx, "k", &recommend.Response{}, time.Minute)
		if _, ok := rc.Get(ctx, "k"); !ok {
			t.Error("Get() after Set() missed")
		}
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cfg := &config.Config{
			Cache: config.CacheConfig{Enabled: true, Backend: "redis", TTL: time.Minute},
			Redis: config.RedisConfig{Addr: "127.0.0.1:1"},
		}
		if _, _, err := initResponseCache(context.Background(), cfg); err == nil {
			t.Error("initResponseCache() error = nil, want connection error")
		}
	})
}

func TestInitEvents(t *testing.T) {
	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	hub := ws.NewHub()

	t.Run("disabled", func(t *testing.T) {
		ev, err := initEvents(&config.Config{}, engine, hub)
		if err != nil {
			t.Fatalf("initEvents() error = %v", err)
		}
		if ev.router != nil || ev.publisher != nil || ev.bus != nil {
			t.Errorf("components = %+v, want all nil", ev)
		}
		ev.Close()
	})

	t.Run("memory backend", func(t *testing.T) {
		cfg := &config.Config{Events: config.EventsConfig{Enabled: true, Backend: "memory"}}
		ev, err := initEvents(cfg, engine, hub)
		if err != nil {
			t.Fatalf("initEvents() error = %v", err)
		}
		defer ev.Close()
		if ev.router == nil || ev.publisher == nil {
			t.Fatal("router or publisher is nil")
		}
		if got := ev.publisher.State(); got != "closed" {
			t.Errorf("breaker state = %q, want closed", got)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := &config.Config{Events: config.EventsConfig{Enabled: true, Backend: "kafka"}}
		if _, err := initEvents(cfg, engine, hub); err == nil {
			t.Error("initEvents() error = nil, want unsupported backend")
		}
	})
}
