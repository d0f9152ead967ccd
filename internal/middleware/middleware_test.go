// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	io_prometheus_client "github.com/prometheus/client_model/go"

	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/metrics"
)

func counterValue(t *testing.T, method, endpoint, status string) float64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := metrics.APIRequestsTotal.WithLabelValues(method, endpoint, status).Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/recipes/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := counterValue(t, http.MethodGet, "/recipes/{id}", "404")

	for _, path := range []string{"/recipes/1", "/recipes/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	}

	if got := counterValue(t, http.MethodGet, "/recipes/{id}", "404") - before; got != 2 {
		t.Errorf("request counter delta = %v, want 2", got)
	}
}

func TestPrometheusMetrics_DefaultStatus(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	before := counterValue(t, http.MethodPost, "unmatched", "200")
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))
	if got := counterValue(t, http.MethodPost, "unmatched", "200") - before; got != 1 {
		t.Errorf("request counter delta = %v, want 1", got)
	}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generates when missing", "", false},
		{"preserves upstream id", "proxy-123", true},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID, logID string
			handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				ctxID = GetRequestID(r.Context())
				logID = logging.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			header := rec.Header().Get("X-Request-ID")
			if tt.keep {
				if header != tt.incoming {
					t.Errorf("X-Request-ID = %q, want %q", header, tt.incoming)
				}
			} else if _, err := uuid.Parse(header); err != nil {
				t.Errorf("X-Request-ID = %q, want a UUID", header)
			}
			if ctxID != header || logID != header {
				t.Errorf("context ids = %q/%q, want %q", ctxID, logID, header)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestCompression(t *testing.T) {
	body := strings.Repeat("tom yum ", 200)
	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))

	t.Run("gzip when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recipes/search", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
		}
		zr, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("gzip.NewReader() error = %v", err)
		}
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if string(got) != body {
			t.Errorf("decompressed body length = %d, want %d", len(got), len(body))
		}
	})

	passThrough := []struct {
		name   string
		path   string
		header map[string]string
	}{
		{"no accept-encoding", "/recipes/search", nil},
		{"websocket upgrade", "/api/v1/ws", map[string]string{"Accept-Encoding": "gzip", "Upgrade": "websocket"}},
		{"metrics endpoint", "/metrics", map[string]string{"Accept-Encoding": "gzip"}},
	}
	for _, tt := range passThrough {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if enc := rec.Header().Get("Content-Encoding"); enc != "" {
				t.Errorf("Content-Encoding = %q, want none", enc)
			}
			if rec.Body.String() != body {
				t.Error("body was modified")
			}
		})
	}
}
