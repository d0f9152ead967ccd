// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package models

import "time"

// RateRequest is the body of POST /recipes/rate.
type RateRequest struct {
	UserID   string  `json:"user_id" validate:"user_id"`
	RecipeID int     `json:"recipe_id" validate:"required,gt=0"`
	Rating   float64 `json:"rating" validate:"min=1,max=5"`
}

// RatingResponse echoes a stored rating.
type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	RecipeID  int       `json:"recipe_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// RecommendationQuery holds the parsed parameters of a recommendations call.
// Limit is not validated here: zero or negative selects the default and
// large values are clamped by the engine.
type RecommendationQuery struct {
	UserID string `json:"user_id" validate:"user_id"`
	Limit  int    `json:"limit"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	Uptime        float64           `json:"uptime_seconds"`
	DatabaseOK    bool              `json:"database_connected"`
	ModelReady    bool              `json:"model_ready"`
	ModelVersion  int64             `json:"model_version,omitempty"`
	Recipes       int               `json:"recipes"`
	Components    map[string]string `json:"components,omitempty"`
	LastCheckedAt time.Time         `json:"last_checked_at"`
}

// ReloadResult reports a corpus reload.
type ReloadResult struct {
	ModelVersion int64  `json:"model_version"`
	Recipes      int    `json:"recipes"`
	Terms        int    `json:"terms"`
	Weighting    string `json:"weighting"`
	DurationMS   int64  `json:"duration_ms"`
}
