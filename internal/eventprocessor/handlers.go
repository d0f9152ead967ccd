// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/metrics"
)

// CacheInvalidator drops cached recommendations of one user.
// recommend.Engine implements it.
type CacheInvalidator interface {
	InvalidateUser(ctx context.Context, userID string) int
}

// RatingBroadcaster pushes rating events to live clients.
type RatingBroadcaster interface {
	BroadcastRating(event *RatingEvent)
}

// RatingHandler reacts to TopicRatingCreated messages.
type RatingHandler struct {
	invalidator CacheInvalidator
	broadcaster RatingBroadcaster
}

// NewRatingHandler creates a handler. Either dependency may be nil.
func NewRatingHandler(invalidator CacheInvalidator, broadcaster RatingBroadcaster) *RatingHandler {
	return &RatingHandler{invalidator: invalidator, broadcaster: broadcaster}
}

// Handle implements message.NoPublishHandlerFunc. Malformed payloads are
// logged and acknowledged; retrying them cannot succeed.
func (h *RatingHandler) Handle(msg *message.Message) error {
	ctx := msg.Context()
	if id := msg.Metadata.Get("correlation_id"); id != "" {
		ctx = logging.ContextWithCorrelationID(ctx, id)
	}

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		metrics.RecordEventConsumed(TopicRatingCreated, err)
		logging.Ctx(ctx).Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed rating event")
		return nil
	}

	invalidated := 0
	if h.invalidator != nil {
		invalidated = h.invalidator.InvalidateUser(ctx, event.UserID)
	}
	if h.broadcaster != nil {
		h.broadcaster.BroadcastRating(event)
	}

	metrics.RecordEventConsumed(TopicRatingCreated, nil)
	logging.Ctx(ctx).Debug().
		Str("event_id", event.EventID).
		Str("user_id", event.UserID).
		Int("recipe_id", event.RecipeID).
		Int("cache_entries_invalidated", invalidated).
		Msg("Rating event processed")
	return nil
}

// Register adds the handler to router for the bus subscriber.
func (h *RatingHandler) Register(r *Router, sub message.Subscriber) {
	r.AddConsumerHandler("rating-created", TopicRatingCreated, sub, h.Handle)
}
