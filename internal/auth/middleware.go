// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/models"
)

// Middleware authenticates requests according to the configured mode.
type Middleware struct {
	jwtManager *JWTManager
	mode       AuthMode
}

// NewMiddleware creates the middleware. jwtManager may be nil in none mode.
func NewMiddleware(jwtManager *JWTManager, mode AuthMode) (*Middleware, error) {
	if mode == AuthModeJWT && jwtManager == nil {
		return nil, errors.New("jwt auth mode requires a JWT manager")
	}
	return &Middleware{jwtManager: jwtManager, mode: mode}, nil
}

// Mode returns the configured mode.
func (m *Middleware) Mode() AuthMode {
	return m.mode
}

// Authenticate requires a valid bearer token in jwt mode and stores its
// claims on the request context. In none mode it passes through.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode != AuthModeJWT {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r)
		if err != nil {
			WriteAuthError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", err.Error())
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			WriteAuthError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// WriteAuthError writes an error envelope. It is shared with authz so that
// both packages answer in the API's format without importing it.
func WriteAuthError(w http.ResponseWriter, status int, code, message string) {
	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    &models.APIError{Code: code, Message: message},
	}
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="mealmatch"`)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Debug().Err(err).Msg("failed to write auth error")
	}
}
