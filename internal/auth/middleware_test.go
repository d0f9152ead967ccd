// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mealmatch/internal/models"
)

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AuthMode
		wantErr bool
	}{
		{"", AuthModeNone, false},
		{"none", AuthModeNone, false},
		{" JWT ", AuthModeJWT, false},
		{"basic", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAuthMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseAuthMode(%q) = %q, %v; want %q, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestNewMiddleware_JWTNeedsManager(t *testing.T) {
	if _, err := NewMiddleware(nil, AuthModeJWT); err == nil {
		t.Error("NewMiddleware(nil, jwt) error = nil, want error")
	}
}

func TestAuthenticate(t *testing.T) {
	m := newTestManager(t, time.Hour)
	token, _ := m.GenerateToken("dana", RoleUser)

	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		mode       AuthMode
		header     string
		wantStatus int
		wantClaims bool
	}{
		{"none mode passes through", AuthModeNone, "", http.StatusNoContent, false},
		{"missing token", AuthModeJWT, "", http.StatusUnauthorized, false},
		{"wrong scheme", AuthModeJWT, "Basic abc", http.StatusUnauthorized, false},
		{"invalid token", AuthModeJWT, "Bearer nope", http.StatusUnauthorized, false},
		{"valid token", AuthModeJWT, "Bearer " + token, http.StatusNoContent, true},
		{"lowercase scheme", AuthModeJWT, "bearer " + token, http.StatusNoContent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			mw, err := NewMiddleware(m, tt.mode)
			if err != nil {
				t.Fatalf("NewMiddleware() error = %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/recipes/get_recommendations/dana", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if (seen != nil) != tt.wantClaims {
				t.Errorf("claims present = %v, want %v", seen != nil, tt.wantClaims)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				var resp models.APIResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("error body is not JSON: %v", err)
				}
				if resp.Status != "error" || resp.Error == nil || resp.Error.Code != "AUTHENTICATION_ERROR" {
					t.Errorf("error body = %+v", resp)
				}
			}
		})
	}
}

func TestAuthorizeUser(t *testing.T) {
	user := &Claims{Role: RoleUser}
	user.Subject = "erin"
	admin := &Claims{Role: RoleAdmin}
	admin.Subject = "root"

	tests := []struct {
		name    string
		claims  *Claims
		userID  string
		wantErr bool
	}{
		{"no claims", nil, "anyone", false},
		{"own id", user, "erin", false},
		{"other id", user, "frank", true},
		{"admin acts for anyone", admin, "frank", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.claims != nil {
				ctx = ContextWithClaims(ctx, tt.claims)
			}
			err := AuthorizeUser(ctx, tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AuthorizeUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrForbidden) {
				t.Errorf("AuthorizeUser() error = %v, want ErrForbidden", err)
			}
		})
	}
}
