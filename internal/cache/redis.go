// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint for SCAN and the DEL batch size.
const scanBatch = 256

// RedisOptions configures a RedisCache.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string // prepended to every key, e.g. "mealmatch:"
}

// RedisCache stores JSON values in Redis so several instances share a cache.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	return &RedisCache{client: client, prefix: opts.KeyPrefix}, nil
}

// GetJSON decodes the value at key into dest. It reports false when the key
// does not exist.
func (r *RedisCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode cached value: %w", err)
	}
	return true, nil
}

// SetJSON stores value as JSON with ttl.
func (r *RedisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+key, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// DeletePrefix removes every key starting with prefix. An empty prefix
// removes everything under the cache's key prefix.
func (r *RedisCache) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	pattern := escapeGlob(r.prefix+prefix) + "*"
	iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

	removed := 0
	batch := make([]string, 0, scanBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := r.client.Del(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
		removed += int(n)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("redis scan: %w", err)
	}
	if err := flush(); err != nil {
		return removed, err
	}
	return removed, nil
}

// Ping checks the connection.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// escapeGlob escapes the characters SCAN MATCH treats specially.
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
