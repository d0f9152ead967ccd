// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package authz provides role-based authorization using Casbin.
//
// Subjects are roles taken from the JWT claims, objects are request paths
// and actions are HTTP methods:
//
//	Request -> auth.Authenticate -> authz.Authorize -> Handler
//
// The model and policy are embedded (model.conf, policy.csv) and can be
// overridden with files on disk. The admin role inherits every user
// permission, and only admin may call /api/v1/admin/*.
//
// Decisions are cached per role for the lifetime of the policy, up to
// EnforcerConfig.CacheMaxPerRole entries per role.
package authz
