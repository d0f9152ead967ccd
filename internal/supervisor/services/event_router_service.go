// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// EventRouter is satisfied by *eventprocessor.Router.
type EventRouter interface {
	Run(ctx context.Context) error
	Close() error
}

// EventRouterService consumes rating events. A watermill router cannot be
// run twice, so an unexpected exit is reported with suture.ErrDoNotRestart
// and the API keeps serving with synchronous cache invalidation.
type EventRouterService struct {
	router EventRouter
}

// NewEventRouterService wraps router.
func NewEventRouterService(router EventRouter) *EventRouterService {
	return &EventRouterService{router: router}
}

// Serve implements suture.Service.
func (e *EventRouterService) Serve(ctx context.Context) error {
	err := e.router.Run(ctx)
	if ctx.Err() != nil {
		if cerr := e.router.Close(); cerr != nil {
			return fmt.Errorf("close event router: %w", cerr)
		}
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("event router stopped: %w: %w", err, suture.ErrDoNotRestart)
	}
	return suture.ErrDoNotRestart
}

func (e *EventRouterService) String() string {
	return "event-router"
}
