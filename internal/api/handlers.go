// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/database"
	"github.com/tomtom215/mealmatch/internal/eventprocessor"
	"github.com/tomtom215/mealmatch/internal/recommend"
	ws "github.com/tomtom215/mealmatch/internal/websocket"
)

// RatingStore is the part of the ratings database the handlers write to.
type RatingStore interface {
	InsertRating(ctx context.Context, userID string, recipeID int, value float64) (*database.Rating, error)
	Ping(ctx context.Context) error
}

// RatingPublisher announces stored ratings. *eventprocessor.Publisher
// implements it.
type RatingPublisher interface {
	PublishRating(ctx context.Context, event *eventprocessor.RatingEvent) error
}

// ReloadFunc rebuilds the model from the configured corpus.
type ReloadFunc func(ctx context.Context) (recommend.ModelInfo, error)

// Dependencies are the collaborators of Handler. Engine and Store are
// required; everything else is optional.
type Dependencies struct {
	Engine    *recommend.Engine
	Store     RatingStore
	Publisher RatingPublisher
	Hub       *ws.Hub
	Reload    ReloadFunc

	// RatingLimiter throttles rating writes per user id.
	RatingLimiter *auth.RateLimiter

	// RecommendTimeout bounds a single recommendation request.
	RecommendTimeout time.Duration

	Version string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_recipes.go: search, lookup and rating
//   - handlers_recommend.go: recommendations, engine status and reload
//   - handlers_health.go: health and probes
type Handler struct {
	engine           *recommend.Engine
	store            RatingStore
	publisher        RatingPublisher
	hub              *ws.Hub
	reload           ReloadFunc
	ratingLimiter    *auth.RateLimiter
	recommendTimeout time.Duration
	version          string
	startTime        time.Time
}

// NewHandler creates a new API handler.
//
//nolint:gocritic // hugeParam: Dependencies is built once at startup
func NewHandler(deps Dependencies) *Handler {
	timeout := deps.RecommendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	return &Handler{
		engine:           deps.Engine,
		store:            deps.Store,
		publisher:        deps.Publisher,
		hub:              deps.Hub,
		reload:           deps.Reload,
		ratingLimiter:    deps.RatingLimiter,
		recommendTimeout: timeout,
		version:          version,
		startTime:        time.Now(),
	}
}
