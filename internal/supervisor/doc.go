// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package supervisor runs the long-lived parts of the recommender under a
suture v4 supervisor tree.

# Layout

	mealmatch
	├── data-layer
	│   └── corpus-watch (when corpus.watch is true)
	├── messaging-layer
	│   ├── websocket-hub
	│   └── event-router (when events.enabled is true)
	└── api-layer
	    └── http-server

Each layer has its own failure counter, so a crash loop in the event router
backs off without touching the HTTP server. Supervisor events are written
through sutureslog into the zerolog logger (see logging.NewSlogLogger).

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
