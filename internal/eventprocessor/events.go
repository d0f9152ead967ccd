// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current event schema version.
const SchemaVersion = 1

// TopicRatingCreated carries one message per stored rating.
const TopicRatingCreated = "ratings.created"

// RatingEvent announces a newly stored rating.
type RatingEvent struct {
	SchemaVersion int `json:"schema_version,omitempty"`

	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`

	RatingID  int64     `json:"rating_id"`
	UserID    string    `json:"user_id"`
	RecipeID  int       `json:"recipe_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRatingEvent fills the event envelope around a stored rating.
func NewRatingEvent(ratingID int64, userID string, recipeID int, value float64, createdAt time.Time) *RatingEvent {
	return &RatingEvent{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		Timestamp:     time.Now().UTC(),
		RatingID:      ratingID,
		UserID:        userID,
		RecipeID:      recipeID,
		Rating:        value,
		CreatedAt:     createdAt,
	}
}

// Topic returns the topic this event is published on.
func (e *RatingEvent) Topic() string {
	return TopicRatingCreated
}

// Validate checks the fields consumers rely on.
func (e *RatingEvent) Validate() error {
	switch {
	case e.EventID == "":
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	case e.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrInvalidEvent)
	case e.RecipeID <= 0:
		return fmt.Errorf("%w: recipe_id must be positive", ErrInvalidEvent)
	}
	return nil
}
