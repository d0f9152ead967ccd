// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import "errors"

// ErrNATSNotEnabled is returned when the nats backend is selected in a binary
// built without the nats tag.
var ErrNATSNotEnabled = errors.New("NATS event backend not enabled (build with -tags nats)")

// ErrNilPublisher is returned when attempting to create a publisher with nil input.
var ErrNilPublisher = errors.New("publisher cannot be nil")

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// ErrInvalidEvent marks events that fail validation.
var ErrInvalidEvent = errors.New("invalid event")

// ErrUnsupportedBackend is returned for an unknown events.backend value.
var ErrUnsupportedBackend = errors.New("unsupported event backend")
