// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ suture.Service = (*WebSocketHubService)(nil)
	_ suture.Service = (*EventRouterService)(nil)
	_ suture.Service = (*CorpusWatchService)(nil)
)

// mockHTTPServer blocks in ListenAndServe until Shutdown unless listenErr is set.
type mockHTTPServer struct {
	listenErr   error
	shutdownErr error
	started     chan struct{}
	stopped     chan struct{}
	listens     atomic.Int32
	shutdowns   atomic.Int32
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.listens.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stopped
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(context.Context) error {
	m.shutdowns.Add(1)
	close(m.stopped)
	return m.shutdownErr
}

func TestNewHTTPServerService_Timeout(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"explicit", 3 * time.Second, 3 * time.Second},
		{"zero", 0, 10 * time.Second},
		{"negative", -time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHTTPServerService(newMockHTTPServer(), tt.in)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
		})
	}
}

func serveAsync(ctx context.Context, svc suture.Service) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return errCh
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)

	select {
	case <-server.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
	if got := server.shutdowns.Load(); got != 1 {
		t.Errorf("Shutdown calls = %d, want 1", got)
	}
}

func TestHTTPServerService_ListenFailure(t *testing.T) {
	bindErr := errors.New("bind: address already in use")
	server := newMockHTTPServer()
	server.listenErr = bindErr

	err := NewHTTPServerService(server, time.Second).Serve(context.Background())
	if !errors.Is(err, bindErr) {
		t.Errorf("Serve() error = %v, want %v", err, bindErr)
	}
	if got := server.shutdowns.Load(); got != 0 {
		t.Errorf("Shutdown calls = %d, want 0", got)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	shutdownErr := errors.New("shutdown timeout")
	server := newMockHTTPServer()
	server.shutdownErr = shutdownErr
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	<-server.started
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() error = %v, want %v", err, shutdownErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestServiceNames(t *testing.T) {
	tests := []struct {
		svc  interface{ String() string }
		want string
	}{
		{NewHTTPServerService(newMockHTTPServer(), 0), "http-server"},
		{NewWebSocketHubService(&mockHub{}), "websocket-hub"},
		{NewEventRouterService(&mockRouter{}), "event-router"},
		{NewCorpusWatchService("recipes.json", 0, &mockReloader{}), "corpus-watch"},
	}
	for _, tt := range tests {
		if got := tt.svc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
