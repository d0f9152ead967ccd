// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package eventprocessor distributes rating events with Watermill.
//
// A stored rating becomes a RatingEvent published on TopicRatingCreated. A
// Watermill router consumes the topic and fans the event out to the
// recommendation cache (per-user invalidation) and the websocket hub.
//
// # Backends
//
//   - memory (default): Watermill gochannel pub/sub inside the process
//   - nats: watermill-nats JetStream, optionally against an embedded
//     nats-server. Requires the nats build tag; without it NewBus returns
//     ErrNATSNotEnabled.
//
// # Resilience
//
// The Publisher wraps the backend publisher in a gobreaker circuit breaker
// so that a dead broker fails fast instead of stalling the rating endpoint.
// Breaker transitions are logged and exported as metrics. The router adds
// Recoverer and Retry middleware around every handler.
//
// Publishing is best effort from the API's point of view: the rating is
// already committed to the ratings store when the event is sent.
package eventprocessor
