// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-1")
	}
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext() = %q, want %q", got, "corr-1")
	}
}

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if got := len(GenerateCorrelationID()); got != 8 {
		t.Errorf("len(GenerateCorrelationID()) = %d, want 8", got)
	}
	if got := len(GenerateRequestID()); got != 36 {
		t.Errorf("len(GenerateRequestID()) = %d, want 36", got)
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("GenerateRequestID returned the same id twice")
	}
}

func TestCtx_AddsFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithCorrelationID(ctx, "abcd1234")

	Ctx(ctx).Info().Msg("served")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-42"`) {
		t.Errorf("request_id missing: %s", out)
	}
	if !strings.Contains(out, `"correlation_id":"abcd1234"`) {
		t.Errorf("correlation_id missing: %s", out)
	}
}
