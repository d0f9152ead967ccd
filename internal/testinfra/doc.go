// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package testinfra starts Docker containers for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/cache/...
//
// Tests call SkipIfNoDocker first so they pass quietly on machines
// without a Docker daemon.
//
//	func TestRedisCache(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    redis, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, redis)
//	    // connect to redis.Addr
//	}
package testinfra
