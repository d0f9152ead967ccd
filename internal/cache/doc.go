// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package cache holds the recommendation response caches.

Two implementations are provided:

  - Cache: an in-process TTL cache with optional LRU bounding, prefix
    invalidation, and hit/miss statistics.
  - RedisCache: a go-redis v9 client storing JSON values, for deployments
    that run several instances behind a load balancer.

Keys are flat strings. Recommendation keys look like

	rec:<escaped user id>:g<user generation>:<model version>:<limit>

so invalidating one user is a DeletePrefix("rec:<escaped user id>:") and a
model rebuild makes every older entry unreachable. The generation is bumped
on every invalidation, so a response computed before a new rating never
lands under a key that is read afterwards.

# Usage

	c := cache.New(5*time.Minute, cache.WithMaxEntries(10000))
	defer c.Close()

	c.Set("rec:alice:3:5", resp)
	if v, ok := c.Get("rec:alice:3:5"); ok {
	    resp = v.(*recommend.Response)
	}
	c.DeletePrefix("rec:alice:")

Redis:

	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
	    Addr:      "127.0.0.1:6379",
	    KeyPrefix: "mealmatch:",
	})
	if err != nil {
	    return err
	}
	defer rc.Close()

Prefix deletes use SCAN, so they never block the Redis server the way KEYS
would.
*/
package cache
