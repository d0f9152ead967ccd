// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package database stores user ratings.

Two drivers are supported:

  - duckdb (default): github.com/duckdb/duckdb-go/v2, single file
  - sqlite: github.com/mattn/go-sqlite3, compatible with ratings databases
    created by earlier deployments

Both use the same table:

	ratings(
	    id         integer primary key, auto-assigned
	    user_id    text     not null,
	    recipe_id  integer  not null,
	    rating     double   not null,
	    created_at timestamp not null
	)

Ratings are append-only. A user may rate the same recipe more than once;
readers collapse repeats so the row with the highest id wins.

Path ":memory:" gives an ephemeral store, which is what the tests use.

RecommendationDataProvider adapts a DB to recommend.RatingsSource.
*/
package database
