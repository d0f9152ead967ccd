// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/mealmatch/internal/models"
)

// healthPingTimeout bounds the database ping of a health check.
const healthPingTimeout = 2 * time.Second

func (h *Handler) healthStatus(ctx context.Context) models.HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	dbOK := h.store != nil && h.store.Ping(pingCtx) == nil

	status := models.HealthStatus{
		Version:       h.version,
		Uptime:        time.Since(h.startTime).Seconds(),
		DatabaseOK:    dbOK,
		Components:    map[string]string{},
		LastCheckedAt: time.Now(),
	}

	if m := h.engine.Model(); m != nil {
		status.ModelReady = true
		status.ModelVersion = m.Version
		status.Recipes = m.Catalog.Len()
		status.Components["model"] = "ready"
	} else {
		status.Components["model"] = "not_loaded"
	}

	if dbOK {
		status.Components["database"] = "ok"
	} else {
		status.Components["database"] = "unreachable"
	}

	if h.publisher != nil {
		if s, ok := h.publisher.(interface{ State() string }); ok {
			status.Components["events"] = s.State()
		}
	}

	switch {
	case status.ModelReady && dbOK:
		status.Status = "healthy"
	case status.ModelReady || dbOK:
		status.Status = "degraded"
	default:
		status.Status = "unhealthy"
	}
	return status
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Database connectivity, model state and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, http.StatusOK, h.healthStatus(r.Context()), start)
}

// HealthLive handles liveness probe requests
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady handles readiness probe requests
// Returns 200 OK only when the model is built and the database answers
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := h.healthStatus(r.Context())

	if !status.ModelReady || !status.DatabaseOK {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     status,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    ErrCodeServiceUnavailable,
				Message: "service is not ready",
			},
		})
		return
	}

	respondSuccess(w, r, http.StatusOK, status, start)
}
