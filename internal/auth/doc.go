// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package auth authenticates API callers.

Two modes exist, selected by security.auth_mode:

  - none: every route is open and handlers see no claims
  - jwt: protected routes need "Authorization: Bearer <token>" signed with
    HS256 and security.jwt_secret (at least 32 characters)

The token subject is the user id. AuthorizeUser enforces that a caller only
rates and reads recommendations for their own id unless the token carries
the admin role. Role based route checks live in internal/authz.

RateLimiter is a keyed golang.org/x/time/rate limiter; the API uses it to
throttle rating writes per user.
*/
package auth
