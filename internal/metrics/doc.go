// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package metrics defines the Prometheus collectors for mealmatch.

Collectors are registered on the default registry through promauto and are
exposed by the API at /metrics. Callers use the Record* helpers rather than
touching collectors directly:

	metrics.RecordRecommendation(fallback, time.Since(start), tiers)
	metrics.RecordMatrixBuild("idf", dur, recipes, terms, version)
	metrics.RecordEventPublished(topic, err)

# Metric families

  - mealmatch_api_*: request count, latency, in-flight, rate limit rejections
  - mealmatch_recommend_*: latency and count by path (profile or fallback),
    items per tier, cache lookups, failures by stage
  - mealmatch_matrix_*, mealmatch_model_version: current model shape
  - mealmatch_db_*, mealmatch_ratings_inserted_total: ratings store
  - mealmatch_events_*, mealmatch_circuit_breaker_*: rating events
  - mealmatch_ws_*: live update clients and broadcasts
  - mealmatch_authz_decisions_total: admin route authorization

Label values are bounded; user ids never appear in labels.
*/
package metrics
