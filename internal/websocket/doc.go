// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

/*
Package websocket pushes live updates to browser clients.

The Hub fans out two message types:

  - rating_created: a rating was stored (fed by the eventprocessor router)
  - model_rebuilt: the term matrix was rebuilt (fed by recommend.Engine.OnRebuild)

Clients may send {"type":"ping"} and receive {"type":"pong"}. A client whose
send buffer is full is disconnected rather than slowing the hub down.

Handler performs the gorilla/websocket upgrade and registers the client. The
hub runs under the supervisor via RunWithContext.
*/
package websocket
