// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key (a user id or client IP) and
// forgets keys that have been idle for an hour.
type RateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	stopClean chan struct{}
	stopOnce  sync.Once
}

// rateLimiterEntry wraps a rate limiter with last access time
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows perMinute events per key with the given burst.
// Call Stop to end the cleanup goroutine.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		stopClean: make(chan struct{}),
	}
	go rl.startCleanup(5 * time.Minute)
	return rl
}

// Allow reports whether an event for key may happen now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[key]
	if !exists {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = time.Now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

func (rl *RateLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now().Add(-time.Hour))
		case <-rl.stopClean:
			return
		}
	}
}

// cleanup removes limiters not accessed since threshold.
func (rl *RateLimiter) cleanup(threshold time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, key)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopClean) })
}
