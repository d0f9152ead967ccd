// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package websocket

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mealmatch/internal/eventprocessor"
	"github.com/tomtom215/mealmatch/internal/logging"
	"github.com/tomtom215/mealmatch/internal/metrics"
	"github.com/tomtom215/mealmatch/internal/recommend"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful shutdown path.
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types for WebSocket communication
const (
	MessageTypeRatingCreated = "rating_created"
	MessageTypeModelRebuilt  = "model_rebuilt"
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
)

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`

	// audience limits delivery to clients authenticated as this user and to
	// admins. Empty means every client.
	audience string
}

// RatingCreatedData is the payload of rating_created.
type RatingCreatedData struct {
	RatingID  int64   `json:"rating_id"`
	UserID    string  `json:"user_id"`
	RecipeID  int     `json:"recipe_id"`
	Rating    float64 `json:"rating"`
	CreatedAt string  `json:"created_at"`
}

// ModelRebuiltData is the payload of model_rebuilt.
type ModelRebuiltData struct {
	ModelVersion int64  `json:"model_version"`
	Weighting    string `json:"weighting"`
	Recipes      int    `json:"recipes"`
	Terms        int    `json:"terms"`
	BuiltAt      string `json:"built_at"`
}

// Hub maintains the set of active clients and broadcasts messages to the clients
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	// done is closed when the hub stops so that pumps never block on
	// Register or Unregister afterwards.
	done     chan struct{}
	doneOnce sync.Once
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
	}
}

// RunWithContext runs the hub until ctx is done, then closes every client.
//
// Selection is prioritized: shutdown first, then client lifecycle events,
// then broadcasts. Client state is therefore settled before a message fans out.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	n := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnections.Set(float64(n))
	logging.Info().Int("total_clients", n).Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnections.Set(float64(n))
	logging.Info().Int("total_clients", n).Msg("websocket client disconnected")
}

// logGracefulShutdown closes all clients and logs without an error field;
// cancellation is the expected way to stop the hub.
func (h *Hub) logGracefulShutdown(ctx context.Context) {
	clientCount := h.GetClientCount()
	h.doneOnce.Do(func() { close(h.done) })
	h.closeAllClients()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if ctx.Err() == context.DeadlineExceeded {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// sortedClients must be called with h.mu held.
func (h *Hub) sortedClients() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

// broadcastToClients delivers in client id order. Clients whose buffers are
// full are disconnected.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var toRemove []*Client
	for _, client := range h.sortedClients() {
		if !client.canReceive(message) {
			continue
		}
		select {
		case client.send <- message:
		default:
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		close(client.send)
		delete(h.clients, client)
		metrics.WSDropped.Inc()
	}
	metrics.WSConnections.Set(float64(len(h.clients)))
	metrics.RecordWSBroadcast(message.Type)
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedClients() {
		close(client.send)
		delete(h.clients, client)
	}
	metrics.WSConnections.Set(0)
}

// BroadcastJSON queues a message for all clients. It never blocks; a full
// queue drops the message.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) {
	h.enqueue(Message{Type: messageType, Data: data})
}

func (h *Hub) enqueue(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
		logging.Warn().Str("message_type", msg.Type).Msg("broadcast channel full, dropping message")
	}
}

// BroadcastRating implements eventprocessor.RatingBroadcaster. The event
// reaches the rating's owner and admins; with authentication off every
// client is unrestricted and receives it.
func (h *Hub) BroadcastRating(event *eventprocessor.RatingEvent) {
	h.enqueue(Message{Type: MessageTypeRatingCreated, audience: event.UserID, Data: RatingCreatedData{
		RatingID:  event.RatingID,
		UserID:    event.UserID,
		RecipeID:  event.RecipeID,
		Rating:    event.Rating,
		CreatedAt: event.CreatedAt.UTC().Format(time.RFC3339),
	}})
}

// BroadcastModelRebuilt announces a new term matrix. Register it with
// recommend.Engine.OnRebuild.
func (h *Hub) BroadcastModelRebuilt(info recommend.ModelInfo) {
	h.BroadcastJSON(MessageTypeModelRebuilt, ModelRebuiltData{
		ModelVersion: info.Version,
		Weighting:    string(info.Weighting),
		Recipes:      info.Recipes,
		Terms:        info.Terms,
		BuiltAt:      info.BuiltAt.UTC().Format(time.RFC3339),
	})
}

// register hands client to the running hub. It reports false once the hub
// has stopped.
func (h *Hub) register(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregister(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarshalMessage converts a message to JSON
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

var _ eventprocessor.RatingBroadcaster = (*Hub)(nil)
