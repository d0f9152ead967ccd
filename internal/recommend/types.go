// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package recommend

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoUsableProfile means the user's ratings produce no profile to score
	// against: no rated recipe exists in the matrix, or the profile sums to zero.
	ErrNoUsableProfile = errors.New("no usable profile")

	// ErrProfileMismatch is returned when a profile is scored against a
	// matrix other than the one it was built from.
	ErrProfileMismatch = errors.New("profile was built from a different term matrix")

	// ErrModelNotReady is returned by Recommend before the first Rebuild.
	ErrModelNotReady = errors.New("recommendation model not built")
)

// Tier names the selection stage that produced a candidate.
type Tier string

const (
	TierScore           Tier = "score"
	TierPopularity      Tier = "popularity"
	TierRandom          Tier = "random"
	TierFill            Tier = "fill"
	TierFallbackPopular Tier = "fallback_popular"
	TierFallbackRandom  Tier = "fallback_random"
)

// Candidate is one entry of a recommendation list.
type Candidate struct {
	RecipeID int     `json:"id"`
	Title    string  `json:"title"`
	Score    float64 `json:"score"`
	Tier     Tier    `json:"tier"`
}

// RecipeScore is the Scorer output for a single recipe.
type RecipeScore struct {
	RecipeID int
	Score    float64
}

// Request is a recommendation query.
type Request struct {
	// UserID identifies the rating user.
	UserID string `json:"user_id"`

	// Limit is the requested list size. Zero or negative uses the
	// configured default; larger than the maximum is clamped.
	Limit int `json:"limit,omitempty"`

	// RequestID is propagated to logs and metadata.
	RequestID string `json:"request_id,omitempty"`
}

// Response is a ranked recommendation list.
type Response struct {
	Items    []Candidate      `json:"items"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID     string    `json:"request_id"`
	UserID        string    `json:"user_id"`
	Limit         int       `json:"limit"`
	ScorerVersion string    `json:"scorer_version"`
	Weighting     Weighting `json:"weighting"`
	ModelVersion  int64     `json:"model_version"`
	Fallback      bool      `json:"fallback"`
	RatedCount    int       `json:"rated_count"`
	CacheHit      bool      `json:"cache_hit"`
	LatencyMS     int64     `json:"latency_ms"`
	Timestamp     time.Time `json:"timestamp"`
}

// RatingsSource supplies per-request rating data. The database layer
// implements it.
type RatingsSource interface {
	// GetUserRatings returns recipe id -> rating for one user. When a
	// recipe was rated more than once the latest rating wins.
	GetUserRatings(ctx context.Context, userID string) (map[int]float64, error)

	// GetPopularity returns recipe id -> number of ratings across all users.
	GetPopularity(ctx context.Context) (map[int]int, error)
}

// ModelInfo summarizes a built model.
type ModelInfo struct {
	Version         int64     `json:"version"`
	Weighting       Weighting `json:"weighting"`
	Recipes         int       `json:"recipes"`
	Terms           int       `json:"terms"`
	BuiltAt         time.Time `json:"built_at"`
	BuildDurationMS int64     `json:"build_duration_ms"`
}

// Status reports engine state for the status endpoint.
type Status struct {
	Ready         bool       `json:"ready"`
	ScorerVersion string     `json:"scorer_version"`
	Model         *ModelInfo `json:"model,omitempty"`
	RequestCount  int64      `json:"request_count"`
	FallbackCount int64      `json:"fallback_count"`
	CacheHits     int64      `json:"cache_hits"`
	CacheMisses   int64      `json:"cache_misses"`
	ErrorCount    int64      `json:"error_count"`
}
