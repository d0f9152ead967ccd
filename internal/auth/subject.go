// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// AuthMode selects how requests are authenticated.
type AuthMode string

const (
	// AuthModeNone leaves every route open.
	AuthModeNone AuthMode = "none"

	// AuthModeJWT requires an HS256 bearer token on protected routes.
	AuthModeJWT AuthMode = "jwt"
)

// Roles understood by the authorization policy.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	// ErrMissingToken means no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken covers malformed, expired and badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden means the caller may not act on the requested user.
	ErrForbidden = errors.New("forbidden")
)

// ParseAuthMode converts a configuration string into an AuthMode.
func ParseAuthMode(s string) (AuthMode, error) {
	switch mode := AuthMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", AuthModeNone:
		return AuthModeNone, nil
	case AuthModeJWT:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown auth mode %q (want none or jwt)", s)
	}
}

type contextKey string

const claimsContextKey contextKey = "claims"

// ContextWithClaims stores validated claims on ctx.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims stored by the middleware, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey).(*Claims)
	return claims
}

// AuthorizeUser checks that the caller may read or write data of userID:
// the token subject must match unless the caller is an admin. Requests
// without claims are allowed; they only reach handlers when auth is off.
func AuthorizeUser(ctx context.Context, userID string) error {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return nil
	}
	if claims.Role == RoleAdmin || claims.Subject == userID {
		return nil
	}
	return fmt.Errorf("%w: token subject %q cannot act for user %q", ErrForbidden, claims.Subject, userID)
}
