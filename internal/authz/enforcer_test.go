// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package authz

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestEnforcer(t *testing.T, cfg *EnforcerConfig) *Enforcer {
	t.Helper()
	e, err := NewEnforcer(cfg)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestEnforcer_EmbeddedPolicy(t *testing.T) {
	e := newTestEnforcer(t, nil)

	tests := []struct {
		name   string
		role   string
		path   string
		method string
		want   bool
	}{
		{"user searches", "user", "/recipes/search", "GET", true},
		{"user rates", "user", "/api/v1/recipes/rate", "POST", true},
		{"user cannot delete", "user", "/recipes/7", "DELETE", false},
		{"user cannot reload", "user", "/api/v1/admin/corpus/reload", "POST", false},
		{"admin reloads", "admin", "/api/v1/admin/corpus/reload", "POST", true},
		{"admin inherits user", "admin", "/recipes/get_recommendations/alice", "GET", true},
		{"unknown role", "guest", "/recipes/search", "GET", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Enforce(tt.role, tt.path, tt.method)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce(%q, %q, %q) = %v, want %v", tt.role, tt.path, tt.method, got, tt.want)
			}
		})
	}
}

func TestEnforcer_CachedDecisionIsStable(t *testing.T) {
	e := newTestEnforcer(t, &EnforcerConfig{CacheEnabled: true})

	for i := 0; i < 3; i++ {
		got, err := e.Enforce("admin", "/api/v1/admin/corpus/reload", "POST")
		if err != nil || !got {
			t.Fatalf("Enforce() = %v, %v; want true, nil", got, err)
		}
	}
	if allowed, ok := e.cache.get("admin", "POST", "/api/v1/admin/corpus/reload"); !ok || !allowed {
		t.Errorf("cache.get() = %v, %v; want true, true", allowed, ok)
	}
}

func TestEnforcer_PolicyFileOverride(t *testing.T) {
	dir := t.TempDir()
	policy := filepath.Join(dir, "policy.csv")
	if err := os.WriteFile(policy, []byte("p, user, /recipes/*, ^GET$\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	e := newTestEnforcer(t, &EnforcerConfig{PolicyPath: policy})

	if ok, _ := e.Enforce("user", "/recipes/search", "GET"); !ok {
		t.Error("GET should be allowed by the override policy")
	}
	if ok, _ := e.Enforce("user", "/recipes/rate", "POST"); ok {
		t.Error("POST should be denied by the override policy")
	}
}

func TestLoadEmbeddedPolicy_Malformed(t *testing.T) {
	e := newTestEnforcer(t, &EnforcerConfig{})
	if err := loadEmbeddedPolicy(e.enforcer, "p, user, /only-two"); err == nil {
		t.Error("expected error for malformed policy line")
	}
}

func TestDecisionCache_BoundedPerRole(t *testing.T) {
	c := newDecisionCache(2)

	c.set("user", "GET", "/recipes/get_recommendations/alice", true)
	c.set("user", "GET", "/recipes/get_recommendations/bob", true)
	c.set("admin", "POST", "/api/v1/admin/corpus/reload", true)
	if got := c.size("user"); got != 2 {
		t.Fatalf("size(user) = %d, want 2", got)
	}

	// A third user path starts the role over; admin keeps its decisions.
	c.set("user", "DELETE", "/recipes/7", false)
	if got := c.size("user"); got != 1 {
		t.Errorf("size(user) = %d, want 1", got)
	}
	if allowed, ok := c.get("user", "DELETE", "/recipes/7"); !ok || allowed {
		t.Errorf("get(user DELETE) = %v, %v; want false, true", allowed, ok)
	}
	if _, ok := c.get("user", "GET", "/recipes/get_recommendations/alice"); ok {
		t.Error("evicted decision should not be returned")
	}
	if allowed, ok := c.get("admin", "POST", "/api/v1/admin/corpus/reload"); !ok || !allowed {
		t.Errorf("get(admin) = %v, %v; want true, true", allowed, ok)
	}

	c.reset()
	if got := c.size("admin"); got != 0 {
		t.Errorf("size(admin) after reset = %d, want 0", got)
	}
}
