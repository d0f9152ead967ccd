// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package authz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// EnforcerConfig holds configuration for the Casbin enforcer.
type EnforcerConfig struct {
	// ModelPath overrides the embedded model when set and present.
	ModelPath string

	// PolicyPath overrides the embedded policy when set and present.
	PolicyPath string

	// CacheEnabled enables enforcement decision caching.
	CacheEnabled bool

	// CacheMaxPerRole caps the cached decisions of one role.
	CacheMaxPerRole int
}

// DefaultEnforcerConfig returns default configuration.
func DefaultEnforcerConfig() *EnforcerConfig {
	return &EnforcerConfig{
		CacheEnabled:    true,
		CacheMaxPerRole: 4096,
	}
}

// Enforcer wraps the Casbin enforcer with a decision cache.
type Enforcer struct {
	config   *EnforcerConfig
	enforcer *casbin.SyncedEnforcer
	cache    *decisionCache
}

// NewEnforcer loads the model and policy and creates an enforcer.
func NewEnforcer(config *EnforcerConfig) (*Enforcer, error) {
	if config == nil {
		config = DefaultEnforcerConfig()
	}

	var m model.Model
	var err error
	if config.ModelPath != "" && fileExists(config.ModelPath) {
		m, err = model.NewModelFromFile(config.ModelPath)
	} else {
		m, err = model.NewModelFromString(embeddedModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if config.PolicyPath != "" && fileExists(config.PolicyPath) {
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(config.PolicyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadEmbeddedPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{config: config, enforcer: enforcer}
	if config.CacheEnabled {
		e.cache = newDecisionCache(config.CacheMaxPerRole)
	}
	return e, nil
}

// loadEmbeddedPolicy parses the embedded CSV. Lines are "p, sub, obj, act"
// or "g, member, role"; the action regex may not contain commas.
func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		ptype, rule := parts[0], parts[1:]

		switch {
		case ptype == "p" && len(rule) == 3:
			if _, err := enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", rule, err)
			}
		case ptype == "g" && len(rule) == 2:
			if _, err := enforcer.AddGroupingPolicy(rule[0], rule[1]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", rule, err)
			}
		default:
			return fmt.Errorf("malformed policy line %q", line)
		}
	}
	return nil
}

// Enforce reports whether role may perform method on path.
func (e *Enforcer) Enforce(role, path, method string) (bool, error) {
	if e.cache != nil {
		if allowed, ok := e.cache.get(role, method, path); ok {
			return allowed, nil
		}
	}

	allowed, err := e.enforcer.Enforce(role, path, method)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}

	if e.cache != nil {
		e.cache.set(role, method, path, allowed)
	}
	return allowed, nil
}

// Close drops cached decisions.
func (e *Enforcer) Close() {
	if e.cache != nil {
		e.cache.reset()
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
