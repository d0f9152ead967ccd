// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/models"
	"github.com/tomtom215/mealmatch/internal/recommend"
)

// EngineStatusResponse is the body of the engine status endpoint.
type EngineStatusResponse struct {
	Engine           recommend.Status    `json:"engine"`
	Weighting        recommend.Weighting `json:"weighting"`
	DefaultLimit     int                 `json:"default_limit"`
	MaxLimit         int                 `json:"max_limit"`
	CacheEnabled     bool                `json:"cache_enabled"`
	WebSocketClients int                 `json:"websocket_clients"`
}

// GetRecommendations returns ranked recipes for a user
//
// @Summary Get recommendations for a user
// @Description Scores unrated recipes against the user's taste profile and blends in popular and random picks. Users without usable ratings get popular and random recipes.
// @Tags Recommendations
// @Produce json
// @Param user_id path string true "User ID"
// @Param limit query int false "Number of recipes (default 5)"
// @Success 200 {object} models.APIResponse{data=[]recommend.Candidate}
// @Failure 400 {object} models.APIResponse "invalid user id or limit"
// @Failure 403 {object} models.APIResponse "token subject does not match user_id"
// @Failure 503 {object} models.APIResponse "model not built yet"
// @Security BearerAuth
// @Router /recipes/get_recommendations/{user_id} [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", 0)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "limit must be an integer", nil)
		return
	}

	query := models.RecommendationQuery{UserID: chi.URLParam(r, "user_id"), Limit: limit}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	if err := auth.AuthorizeUser(r.Context(), query.UserID); err != nil {
		respondError(w, http.StatusForbidden, ErrCodeForbidden, "cannot read recommendations of another user", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.recommendTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		UserID:    query.UserID,
		Limit:     query.Limit,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	switch {
	case errors.Is(err, recommend.ErrModelNotReady):
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "recommendation model is not ready", nil)
		return
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, ErrCodeTimeout, "recommendation timed out", err)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "failed to generate recommendations", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp.Items,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			RequestID:   resp.Metadata.RequestID,
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      resp.Metadata.CacheHit,
		},
	})
}

// RecommendStatus reports the engine state
//
// @Summary Recommendation engine status
// @Description Model version, weighting, corpus size, build time and request counters
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=EngineStatusResponse}
// @Router /recommend/status [get]
func (h *Handler) RecommendStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := h.engine.Config()

	status := EngineStatusResponse{
		Engine:       h.engine.Status(),
		Weighting:    cfg.Weighting,
		DefaultLimit: cfg.Limits.DefaultLimit,
		MaxLimit:     cfg.Limits.MaxLimit,
		CacheEnabled: cfg.Cache.Enabled,
	}
	if h.hub != nil {
		status.WebSocketClients = h.hub.GetClientCount()
	}

	respondSuccess(w, r, http.StatusOK, status, start)
}

// ReloadCorpus rebuilds the model from the corpus file
//
// @Summary Reload the recipe corpus
// @Description Re-reads the corpus file and atomically swaps in a new term matrix. The old model keeps serving if the file is invalid.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReloadResult}
// @Failure 403 {object} models.APIResponse "admin role required"
// @Failure 422 {object} models.APIResponse "corpus file invalid"
// @Security BearerAuth
// @Router /admin/corpus/reload [post]
func (h *Handler) ReloadCorpus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.reload == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, ErrReloadUnavailable.Error(), nil)
		return
	}

	info, err := h.reload(r.Context())
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, ErrCodeReloadFailed, "corpus reload failed: "+err.Error(), err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("model_version", info.Version).
		Int("recipes", info.Recipes).
		Msg("Corpus reloaded via API")

	respondSuccess(w, r, http.StatusOK, models.ReloadResult{
		ModelVersion: info.Version,
		Recipes:      info.Recipes,
		Terms:        info.Terms,
		Weighting:    string(info.Weighting),
		DurationMS:   info.BuildDurationMS,
	}, start)
}
