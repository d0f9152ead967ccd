// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package models defines the HTTP request and response shapes of Mealmatch.

Domain types live with their owners: recipes in internal/corpus, ratings in
internal/database and recommendation lists in internal/recommend. This package
only holds the API envelope and request DTOs the handlers decode and validate.

Key Components:

  - APIResponse, Metadata, APIError: the envelope written by every handler
  - RateRequest: POST /recipes/rate body, validated with go-playground/validator
  - HealthStatus, ReloadResult: operational endpoints
*/
package models
