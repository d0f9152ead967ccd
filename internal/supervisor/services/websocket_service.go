// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package services

import "context"

// ContextHub is satisfied by *websocket.Hub.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the hub that pushes rating and model-rebuild
// notifications to connected clients. The hub closes its clients when
// the context ends.
type WebSocketHubService struct {
	hub ContextHub
}

// NewWebSocketHubService wraps hub.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{hub: hub}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

func (w *WebSocketHubService) String() string {
	return "websocket-hub"
}
