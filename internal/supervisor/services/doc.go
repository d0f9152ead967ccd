// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package services adapts recommender components to suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown
//   - WebSocketHubService: the notification hub
//   - EventRouterService: the watermill router consuming rating events
//   - CorpusWatchService: debounced corpus reloads on file change
package services
