// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultCleanupInterval is how often expired entries are swept.
const DefaultCleanupInterval = time.Minute

// entry is a node in the recency list.
type entry struct {
	key       string
	data      interface{}
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// Cache is a thread-safe in-memory cache with per-entry TTL. When MaxEntries
// is set, the least recently used entry is evicted to make room.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	head, tail *entry // head.next is most recent
	ttl        time.Duration
	maxEntries int
	stats      Stats

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// Stats tracks cache performance.
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries bounds the cache size. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithCleanupInterval changes how often expired entries are swept.
func WithCleanupInterval(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.cleanupInterval = d
		}
	}
}

// New creates a cache whose entries live for ttl by default and starts a
// background sweeper. Call Close to stop it.
//
//	c := cache.New(5*time.Minute, cache.WithMaxEntries(10000))
//	defer c.Close()
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries:         make(map[string]*entry),
		head:            &entry{},
		tail:            &entry{},
		ttl:             ttl,
		cleanupInterval: DefaultCleanupInterval,
		stop:            make(chan struct{}),
		stats:           Stats{LastCleanup: time.Now()},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	for _, opt := range opts {
		opt(c)
	}

	go c.cleanupLoop()
	return c
}

// Close stops the background sweeper. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.recordMiss()
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.removeEntry(e)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEvictions(1)
		return nil, false
	}
	c.moveToFront(e)
	data := e.data
	c.mu.Unlock()

	c.recordHit()
	return data, true
}

// Set stores value with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	expiresAt := time.Now().Add(ttl)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.data = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		c.mu.Unlock()
		return
	}

	e := &entry{key: key, data: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.entries[key] = e

	evicted := int64(0)
	for c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.removeEntry(c.tail.prev)
		evicted++
	}
	size := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.TotalKeys = size
	c.stats.Evictions += evicted
	c.stats.mu.Unlock()
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		c.removeEntry(e)
	}
	size := int64(len(c.entries))
	c.mu.Unlock()

	if ok {
		c.recordEvictions(1)
	}
	c.setTotalKeys(size)
}

// DeletePrefix removes every key starting with prefix and returns how many
// were removed.
func (c *Cache) DeletePrefix(prefix string) int {
	c.mu.Lock()
	removed := 0
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.removeEntry(e)
			removed++
		}
	}
	size := int64(len(c.entries))
	c.mu.Unlock()

	c.recordEvictions(int64(removed))
	c.setTotalKeys(size)
	return removed
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]*entry)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the statistics.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns hits as a percentage of lookups.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evictions := int64(0)
	for _, e := range c.entries {
		if now.After(e.expiresAt) {
			c.removeEntry(e)
			evictions++
		}
	}
	size := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = size
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()
}

// List helpers; callers hold c.mu.

func (c *Cache) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache) moveToFront(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *Cache) removeEntry(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.entries, e.key)
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

func (c *Cache) recordEvictions(n int64) {
	if n == 0 {
		return
	}
	c.stats.mu.Lock()
	c.stats.Evictions += n
	c.stats.mu.Unlock()
}

func (c *Cache) setTotalKeys(n int64) {
	c.stats.mu.Lock()
	c.stats.TotalKeys = n
	c.stats.mu.Unlock()
}
