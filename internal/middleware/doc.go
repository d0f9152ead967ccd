// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: honours or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per route pattern
  - Compression: pooled gzip writer for JSON responses

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
*/
package middleware
