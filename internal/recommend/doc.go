// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package recommend implements content-based recipe recommendations.
//
// # Pipeline
//
// A recipe's ingredients, tags, kitchen and course lists are concatenated into
// a token sequence (ExtractFeatures). All sequences of the corpus are turned
// into a recipe × term matrix (BuildTermMatrix), weighted either by raw
// occurrence counts or by counts scaled with log(N / (df + 1)).
//
// Per request, the user's ratings are folded into a profile vector
// (BuildProfile): the sum of rating × row over every rated recipe that exists
// in the matrix. Each recipe is scored by the dot product of its row with the
// profile divided by the profile's weight sum (Score).
//
// Assemble turns scores into the final list: a score tier, a popularity tier
// and a random tier, topped up by popularity if the pool runs short. Rated
// recipes are never returned. When there is no usable profile, SelectFallback
// ranks by popularity and fills the tail with random picks.
//
// # Engine
//
// Engine owns the current Model (catalog plus term matrix). Rebuild builds a
// new model and swaps it in atomically; requests already running keep the
// model they started with. The engine's random source is seeded from Config
// and guarded by a mutex so that a fixed seed and request order give the same
// output.
//
//	engine, err := recommend.NewEngine(cfg, logger,
//	    recommend.WithRatingsSource(provider),
//	    recommend.WithCache(recommend.NewMemoryResponseCache(cache.New(5*time.Minute))),
//	)
//	if _, err := engine.Rebuild(catalog); err != nil { ... }
//	resp, err := engine.Recommend(ctx, recommend.Request{UserID: "alice", Limit: 5})
package recommend
