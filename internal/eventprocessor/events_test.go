// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import (
	"errors"
	"testing"
	"time"
)

func TestRatingEvent_Validate(t *testing.T) {
	valid := func() *RatingEvent {
		return NewRatingEvent(7, "alice", 12, 4, time.Now())
	}

	tests := []struct {
		name    string
		mutate  func(e *RatingEvent)
		wantErr bool
	}{
		{"valid", func(*RatingEvent) {}, false},
		{"missing event id", func(e *RatingEvent) { e.EventID = "" }, true},
		{"missing user", func(e *RatingEvent) { e.UserID = "" }, true},
		{"zero recipe", func(e *RatingEvent) { e.RecipeID = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("Validate() error = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestNewRatingEvent(t *testing.T) {
	created := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	e := NewRatingEvent(3, "bob", 44, 2.5, created)

	if e.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", e.SchemaVersion, SchemaVersion)
	}
	if e.EventID == "" {
		t.Error("EventID is empty")
	}
	if e.Topic() != TopicRatingCreated {
		t.Errorf("Topic() = %q, want %q", e.Topic(), TopicRatingCreated)
	}
	if !e.CreatedAt.Equal(created) || e.RatingID != 3 || e.Rating != 2.5 {
		t.Errorf("event = %+v, fields not copied", e)
	}
}

func TestSerializeDeserialize(t *testing.T) {
	in := NewRatingEvent(1, "carol", 5, 5, time.Now().UTC())
	data, err := SerializeEvent(in)
	if err != nil {
		t.Fatalf("SerializeEvent() error = %v", err)
	}
	out, err := DeserializeEvent(data)
	if err != nil {
		t.Fatalf("DeserializeEvent() error = %v", err)
	}
	if out.EventID != in.EventID || out.UserID != in.UserID || out.RecipeID != in.RecipeID {
		t.Errorf("DeserializeEvent() = %+v, want %+v", out, in)
	}
}

func TestSerializeEvent_RejectsInvalid(t *testing.T) {
	if _, err := SerializeEvent(&RatingEvent{EventID: "x", RecipeID: 1}); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("SerializeEvent() error = %v, want ErrInvalidEvent", err)
	}
}

func TestDeserializeEvent_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"missing user", `{"event_id":"e1","recipe_id":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DeserializeEvent([]byte(tt.data)); err == nil {
				t.Error("DeserializeEvent() error = nil, want error")
			}
		})
	}
}
