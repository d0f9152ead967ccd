// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package authz

import "sync"

// decisionCache remembers casbin decisions for as long as the loaded policy
// lives. Only two roles exist, so decisions are grouped by role. Recipe paths
// embed user ids, so a role's decisions are dropped once they reach the cap.
type decisionCache struct {
	mu         sync.RWMutex
	maxPerRole int
	roles      map[string]map[request]bool
}

type request struct {
	method string
	path   string
}

func newDecisionCache(maxPerRole int) *decisionCache {
	if maxPerRole <= 0 {
		maxPerRole = 4096
	}
	return &decisionCache{
		maxPerRole: maxPerRole,
		roles:      make(map[string]map[request]bool),
	}
}

func (c *decisionCache) get(role, method, path string) (allowed, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	allowed, ok = c.roles[role][request{method: method, path: path}]
	return allowed, ok
}

func (c *decisionCache) set(role, method, path string, allowed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	decisions := c.roles[role]
	if decisions == nil || len(decisions) >= c.maxPerRole {
		decisions = make(map[request]bool)
		c.roles[role] = decisions
	}
	decisions[request{method: method, path: path}] = allowed
}

// size returns the number of cached decisions for role.
func (c *decisionCache) size(role string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.roles[role])
}

func (c *decisionCache) reset() {
	c.mu.Lock()
	c.roles = make(map[string]map[request]bool)
	c.mu.Unlock()
}
