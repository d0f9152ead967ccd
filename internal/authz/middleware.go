// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package authz

import (
	"net/http"

	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/metrics"
)

// Middleware enforces the Casbin policy on authenticated requests.
type Middleware struct {
	enforcer *Enforcer
	mode     auth.AuthMode
}

// NewMiddleware creates a new authorization middleware. With mode none,
// requests pass through unchecked.
func NewMiddleware(enforcer *Enforcer, mode auth.AuthMode) *Middleware {
	return &Middleware{enforcer: enforcer, mode: mode}
}

// Authorize checks the caller's role against the request path and method.
// It must run after auth.Middleware.Authenticate.
func (m *Middleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode == auth.AuthModeNone {
			next.ServeHTTP(w, r)
			return
		}

		claims := auth.ClaimsFromContext(r.Context())
		if claims == nil {
			auth.WriteAuthError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "authentication required")
			return
		}

		allowed, err := m.enforcer.Enforce(claims.Role, r.URL.Path, r.Method)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
			auth.WriteAuthError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization failed")
			return
		}
		metrics.RecordAuthzDecision(claims.Role, allowed)

		if !allowed {
			logging.Ctx(r.Context()).Warn().
				Str("subject", claims.Subject).
				Str("role", claims.Role).
				Str("path", r.URL.Path).
				Msg("Authorization denied")
			auth.WriteAuthError(w, http.StatusForbidden, "AUTHORIZATION_ERROR", "insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
