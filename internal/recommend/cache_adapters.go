// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mealmatch/internal/cache"
)

// ResponseCache stores recommendation responses by key.
type ResponseCache interface {
	Get(ctx context.Context, key string) (*Response, bool)
	Set(ctx context.Context, key string, resp *Response, ttl time.Duration)
	DeletePrefix(ctx context.Context, prefix string) int
	Clear(ctx context.Context)
}

type memoryResponseCache struct {
	c *cache.Cache
}

// NewMemoryResponseCache keeps responses in a process-local TTL cache.
func NewMemoryResponseCache(c *cache.Cache) ResponseCache {
	return &memoryResponseCache{c: c}
}

func (m *memoryResponseCache) Get(_ context.Context, key string) (*Response, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	resp, ok := v.(*Response)
	return resp, ok
}

func (m *memoryResponseCache) Set(_ context.Context, key string, resp *Response, ttl time.Duration) {
	m.c.SetWithTTL(key, resp, ttl)
}

func (m *memoryResponseCache) DeletePrefix(_ context.Context, prefix string) int {
	return m.c.DeletePrefix(prefix)
}

func (m *memoryResponseCache) Clear(_ context.Context) {
	m.c.Clear()
}

type redisResponseCache struct {
	c      *cache.RedisCache
	logger zerolog.Logger
}

// NewRedisResponseCache shares responses between instances through Redis.
// Redis errors are logged and treated as misses.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRedisResponseCache(c *cache.RedisCache, logger zerolog.Logger) ResponseCache {
	return &redisResponseCache{c: c, logger: logger.With().Str("component", "recommend_cache").Logger()}
}

func (r *redisResponseCache) Get(ctx context.Context, key string) (*Response, bool) {
	var resp Response
	found, err := r.c.GetJSON(ctx, key, &resp)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("redis get failed")
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &resp, true
}

func (r *redisResponseCache) Set(ctx context.Context, key string, resp *Response, ttl time.Duration) {
	if err := r.c.SetJSON(ctx, key, resp, ttl); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}

func (r *redisResponseCache) DeletePrefix(ctx context.Context, prefix string) int {
	n, err := r.c.DeletePrefix(ctx, prefix)
	if err != nil {
		r.logger.Warn().Err(err).Str("prefix", prefix).Msg("redis invalidate failed")
	}
	return n
}

func (r *redisResponseCache) Clear(ctx context.Context) {
	if _, err := r.c.DeletePrefix(ctx, ""); err != nil {
		r.logger.Warn().Err(err).Msg("redis clear failed")
	}
}
