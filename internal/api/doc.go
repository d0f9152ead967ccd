// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package api provides the HTTP interface of Mealmatch.
//
// Routes are registered on a chi router (router.go). The recipe routes
// answer both at /recipes and /api/v1/recipes:
//
//	GET  /recipes/search?query=              title search
//	GET  /recipes/{id}                       full recipe record
//	POST /recipes/rate                       store a rating (auth)
//	GET  /recipes/get_recommendations/{uid}  ranked recommendations (auth)
//
// Operational routes live under /api/v1: health probes, engine status,
// the admin corpus reload and the websocket stream. /metrics serves
// Prometheus and /swagger/ the API documentation.
//
// Every JSON response uses the models.APIResponse envelope.
package api
