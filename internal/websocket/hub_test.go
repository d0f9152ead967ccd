// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package websocket

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/mealmatch/internal/auth"
	"github.com/tomtom215/mealmatch/internal/eventprocessor"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/recommend"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// setupHub starts a hub that is stopped when the test ends.
func setupHub(t *testing.T) (*Hub, <-chan error) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()
	t.Cleanup(cancel)
	return hub, errCh
}

// createTestClient creates a connectionless client with the given buffer.
func createTestClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
	return Message{}
}

func TestHub_BroadcastRating(t *testing.T) {
	hub, _ := setupHub(t)
	a, b := createTestClient(hub, 4), createTestClient(hub, 4)
	hub.Register <- a
	hub.Register <- b
	waitForClients(t, hub, 2)

	created := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	hub.BroadcastRating(eventprocessor.NewRatingEvent(5, "frank", 33, 4, created))

	for _, c := range []*Client{a, b} {
		msg := receive(t, c)
		if msg.Type != MessageTypeRatingCreated {
			t.Errorf("Type = %q, want %q", msg.Type, MessageTypeRatingCreated)
		}
		data, ok := msg.Data.(RatingCreatedData)
		if !ok {
			t.Fatalf("Data type = %T, want RatingCreatedData", msg.Data)
		}
		if data.UserID != "frank" || data.RecipeID != 33 || data.CreatedAt != "2026-04-01T10:00:00Z" {
			t.Errorf("Data = %+v", data)
		}
	}
}

func TestHub_RatingReachesOwnerAndAdmins(t *testing.T) {
	hub, _ := setupHub(t)
	owner := createTestClient(hub, 4)
	owner.identify(&auth.Claims{Role: auth.RoleUser, RegisteredClaims: jwt.RegisteredClaims{Subject: "frank"}})
	other := createTestClient(hub, 4)
	other.identify(&auth.Claims{Role: auth.RoleUser, RegisteredClaims: jwt.RegisteredClaims{Subject: "gina"}})
	admin := createTestClient(hub, 4)
	admin.identify(&auth.Claims{Role: auth.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "root"}})
	open := createTestClient(hub, 4)
	open.identify(nil)
	for _, c := range []*Client{owner, other, admin, open} {
		hub.Register <- c
	}
	waitForClients(t, hub, 4)

	hub.BroadcastRating(eventprocessor.NewRatingEvent(1, "frank", 7, 5, time.Now()))
	hub.BroadcastModelRebuilt(recommend.ModelInfo{Version: 2})

	for name, c := range map[string]*Client{"owner": owner, "admin": admin, "unauthenticated": open} {
		if msg := receive(t, c); msg.Type != MessageTypeRatingCreated {
			t.Errorf("%s first message = %q, want %q", name, msg.Type, MessageTypeRatingCreated)
		}
		if msg := receive(t, c); msg.Type != MessageTypeModelRebuilt {
			t.Errorf("%s second message = %q, want %q", name, msg.Type, MessageTypeModelRebuilt)
		}
	}

	// The other user only sees the public model announcement.
	if msg := receive(t, other); msg.Type != MessageTypeModelRebuilt {
		t.Errorf("other user received %q, want only %q", msg.Type, MessageTypeModelRebuilt)
	}
	select {
	case msg := <-other.send:
		t.Errorf("other user received extra message %q", msg.Type)
	default:
	}
}

func TestHub_BroadcastModelRebuilt(t *testing.T) {
	hub, _ := setupHub(t)
	c := createTestClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.BroadcastModelRebuilt(recommend.ModelInfo{Version: 3, Weighting: recommend.WeightingIDF, Recipes: 10, Terms: 42})

	msg := receive(t, c)
	data, ok := msg.Data.(ModelRebuiltData)
	if msg.Type != MessageTypeModelRebuilt || !ok {
		t.Fatalf("message = %+v, want model_rebuilt", msg)
	}
	if data.ModelVersion != 3 || data.Weighting != "idf" || data.Terms != 42 {
		t.Errorf("Data = %+v", data)
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub, _ := setupHub(t)
	slow := createTestClient(hub, 0)
	fast := createTestClient(hub, 4)
	hub.Register <- slow
	hub.Register <- fast
	waitForClients(t, hub, 2)

	hub.BroadcastJSON(MessageTypePong, nil)
	receive(t, fast)
	waitForClients(t, hub, 1)

	if _, ok := <-slow.send; ok {
		t.Error("slow client channel should be closed")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub, _ := setupHub(t)
	c := createTestClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.Unregister <- c
	waitForClients(t, hub, 0)
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()

	c := createTestClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}

	if hub.GetClientCount() != 0 {
		t.Errorf("client count = %d, want 0", hub.GetClientCount())
	}
	if hub.register(createTestClient(hub, 1)) {
		t.Error("register() after shutdown = true, want false")
	}
}

func TestGetShutdownReason(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()

	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %q", got)
	}
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %q", got)
	}
}
