// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/corpus"
	"github.com/tomtom215/mealmatch/internal/eventprocessor"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/models"
)

// maxRateBodyBytes caps the rating request body.
const maxRateBodyBytes = 4096

// catalog returns the catalog of the current model.
func (h *Handler) catalog() (*corpus.Catalog, error) {
	m := h.engine.Model()
	if m == nil || m.Catalog == nil {
		return nil, ErrModelNotLoaded
	}
	return m.Catalog, nil
}

// SearchRecipes handles title search requests
//
// @Summary Search recipes by title
// @Description Case-insensitive substring match on recipe titles, in corpus order
// @Tags Recipes
// @Produce json
// @Param query query string true "Title substring"
// @Success 200 {object} models.APIResponse{data=[]corpus.Summary}
// @Failure 400 {object} models.APIResponse "query parameter missing"
// @Router /recipes/search [get]
func (h *Handler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	values, ok := r.URL.Query()["query"]
	if !ok || len(values) == 0 {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "query parameter is required", nil)
		return
	}

	catalog, err := h.catalog()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, err.Error(), nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, catalog.Search(values[0]), start)
}

// GetRecipe returns a single recipe record
//
// @Summary Get a recipe by id
// @Description Returns the recipe exactly as stored in the corpus
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "id is not an integer"
// @Failure 404 {object} models.APIResponse "unknown recipe"
// @Router /recipes/{id} [get]
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "recipe id must be an integer", nil)
		return
	}

	catalog, err := h.catalog()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, err.Error(), nil)
		return
	}

	recipe, found := catalog.Get(id)
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Recipe not found", nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, recipe, start)
}

// RateRecipe stores a rating
//
// @Summary Rate a recipe
// @Description Stores a rating between 1 and 5 and announces it to subscribers
// @Tags Recipes
// @Accept json
// @Produce json
// @Param rating body models.RateRequest true "Rating"
// @Success 201 {object} models.APIResponse{data=models.RatingResponse}
// @Failure 400 {object} models.APIResponse "invalid body"
// @Failure 403 {object} models.APIResponse "token subject does not match user_id"
// @Failure 404 {object} models.APIResponse "unknown recipe"
// @Failure 429 {object} models.APIResponse "too many ratings"
// @Security BearerAuth
// @Router /recipes/rate [post]
func (h *Handler) RateRecipe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var req models.RateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRateBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "request body must be a JSON rating", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	if err := auth.AuthorizeUser(ctx, req.UserID); err != nil {
		respondError(w, http.StatusForbidden, ErrCodeForbidden, "cannot rate for another user", nil)
		return
	}

	if h.ratingLimiter != nil && !h.ratingLimiter.Allow(req.UserID) {
		respondError(w, http.StatusTooManyRequests, ErrCodeRateLimited, "too many ratings, slow down", nil)
		return
	}

	catalog, err := h.catalog()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, err.Error(), nil)
		return
	}
	if _, found := catalog.Get(req.RecipeID); !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Recipe not found", nil)
		return
	}

	rating, err := h.store.InsertRating(ctx, req.UserID, req.RecipeID, req.Rating)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "failed to store rating", err)
		return
	}

	// Local cache entries go stale immediately; the event consumer also
	// invalidates for other instances sharing a Redis cache.
	h.engine.InvalidateUser(ctx, rating.UserID)
	h.announceRating(r, eventprocessor.NewRatingEvent(rating.ID, rating.UserID, rating.RecipeID, rating.Value, rating.CreatedAt))

	respondSuccess(w, r, http.StatusCreated, models.RatingResponse{
		ID:        rating.ID,
		UserID:    rating.UserID,
		RecipeID:  rating.RecipeID,
		Rating:    rating.Value,
		CreatedAt: rating.CreatedAt,
	}, start)
}

// announceRating publishes the event, or broadcasts it directly when the
// event bus is disabled. Failures never fail the request.
func (h *Handler) announceRating(r *http.Request, event *eventprocessor.RatingEvent) {
	if h.publisher == nil {
		if h.hub != nil {
			h.hub.BroadcastRating(event)
		}
		return
	}

	if err := h.publisher.PublishRating(r.Context(), event); err != nil {
		level := logging.Ctx(r.Context()).Warn()
		if errors.Is(err, eventprocessor.ErrPublisherClosed) {
			level = logging.Ctx(r.Context()).Debug()
		}
		level.Err(err).
			Str("event_id", event.EventID).
			Str("user_id", sanitizeLogValue(event.UserID)).
			Msg("Failed to publish rating event")
	}
}
