// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package models

import (
	"time"
)

// APIResponse is the envelope every HTTP endpoint writes.
//
// Status is "success" or "error". Error is set only for errors.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"id": 12, "title": "Green Curry"}],
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 3
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "rating must be at least 1",
//	    "details": {"field": "rating"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and caching information for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the machine readable error body.
//
// Common codes:
//   - VALIDATION_ERROR: bad parameters or body
//   - NOT_FOUND: unknown recipe
//   - DATABASE_ERROR: ratings store failure
//   - AUTHENTICATION_ERROR / AUTHORIZATION_ERROR
//   - RATE_LIMIT_EXCEEDED
//   - SERVICE_UNAVAILABLE: model not built yet
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
