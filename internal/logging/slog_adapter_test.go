// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := &SlogHandler{logger: NewTestLogger(&buf)}
	logger := slog.New(h).With("service", "http").WithGroup("req")

	logger.Warn("service restarted", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"service":"http"`, `"req.attempt":2`, `"message":"service restarted"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestWatermillAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var adapter watermill.LoggerAdapter = NewWatermillAdapter(NewTestLogger(&buf))
	adapter = adapter.With(watermill.LogFields{"topic": "ratings.created"})

	adapter.Error("handler failed", errors.New("boom"), watermill.LogFields{"attempt": 3})

	out := buf.String()
	for _, want := range []string{`"topic":"ratings.created"`, `"error":"boom"`, `"attempt":3`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}
