// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// @title Mealmatch API
// @version 1.0
// @description Content-based recipe recommendations from user ratings.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Rating writes are
// @description additionally limited per user id.
// @description
// @description ## Error Responses
// @description
// @description All error responses use the envelope
// @description `{"status": "error", "data": null, "error": {"code": "...", "message": "..."}, "metadata": {...}}`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/mealmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT in the Authorization header: Bearer <token>
//
// @tag.name Core
// @tag.description Health and readiness probes
//
// @tag.name Recipes
// @tag.description Recipe search, lookup and rating
//
// @tag.name Recommendations
// @tag.description Personalized recipe lists and engine status
//
// @tag.name Admin
// @tag.description Corpus reload, admin role only
package main
