// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package main

import (
	"fmt"

	"github.com/tomtom215/mealmatch/internal/config"
	"github.com/tomtom215/mealmatch/internal/eventprocessor"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/recommend"
	ws "github.com/tomtom215/mealmatch/internal/websocket"
)

// eventComponents holds the rating event pipeline. All fields are nil when
// events are disabled; the API then broadcasts ratings directly.
type eventComponents struct {
	bus       *eventprocessor.Bus
	router    *eventprocessor.Router
	publisher *eventprocessor.Publisher
}

// initEvents builds the bus, the circuit-broken publisher and the router
// with the rating consumer registered. The NATS backend needs -tags nats.
func initEvents(cfg *config.Config, engine *recommend.Engine, hub *ws.Hub) (*eventComponents, error) {
	if !cfg.Events.Enabled {
		logging.Info().Msg("Rating events disabled (EVENTS_ENABLED=false)")
		return &eventComponents{}, nil
	}

	epCfg := eventprocessor.ConfigFromApp(&cfg.Events)
	wmLogger := logging.NewWatermillAdapter(logging.WithComponent("events"))

	bus, err := eventprocessor.NewBus(&epCfg, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create event bus: %w", err)
	}

	publisher, err := eventprocessor.NewPublisher(bus.Publisher, eventprocessor.NewCircuitBreaker(epCfg.Breaker))
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("create event publisher: %w", err)
	}

	router, err := eventprocessor.NewRouter(&epCfg.Router, wmLogger)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("create event router: %w", err)
	}
	eventprocessor.NewRatingHandler(engine, hub).Register(router, bus.Subscriber)

	logging.Info().Str("backend", bus.Backend).Msg("Rating events enabled")
	return &eventComponents{bus: bus, router: router, publisher: publisher}, nil
}

// Close stops the publisher and releases the bus. The router is closed by
// its supervisor service.
func (e *eventComponents) Close() {
	if e.publisher != nil {
		_ = e.publisher.Close() //nolint:errcheck // never fails
	}
	if e.bus != nil {
		if err := e.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
}
