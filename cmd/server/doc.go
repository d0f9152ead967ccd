// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package main is the entry point for the Mealmatch server.

Mealmatch recommends recipes from a fixed JSON corpus. Each recipe's
ingredients, tags, kitchen and course labels form a term matrix; a user's
ratings weight the rows of that matrix into a profile, and unrated recipes
are scored by dot product with the profile. Users without ratings get a
blend of popular and random recipes.

# Startup

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog
 3. Corpus: loaded and validated; startup aborts on error
 4. Ratings store: DuckDB (default) or SQLite
 5. Response cache: in-memory TTL cache or Redis
 6. Engine: term matrix built once, rebuilt on corpus reload
 7. Rating events: watermill over gochannel or NATS JetStream (-tags nats)
 8. Auth: none or JWT, with casbin route policies
 9. Supervisor tree: suture v4 runs the HTTP server, WebSocket hub, event
    router and optional corpus watcher

# Supervisor Tree

	mealmatch
	├── data-layer
	│   └── corpus-watch (CORPUS_WATCH=true)
	├── messaging-layer
	│   ├── websocket-hub
	│   └── event-router (EVENTS_ENABLED=true)
	└── api-layer
	    └── http-server

# Example

	export CORPUS_PATH=./recipes_for_cbrs.json
	export DB_PATH=./mealmatch.duckdb
	export AUTH_MODE=none
	./mealmatch

	curl 'localhost:8000/recipes/search?query=pasta'
	curl -X POST localhost:8000/recipes/rate \
	  -d '{"user_id": "alice", "recipe_id": 12, "rating": 5}'
	curl localhost:8000/recipes/get_recommendations/alice?limit=5

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for
SHUTDOWN_TIMEOUT, then the event bus, cache and database are closed.
*/
package main
