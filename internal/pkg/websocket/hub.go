package websocket

import (
	"context"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/rs/zerolog"
)

// Hub maintains the set of active clients and broadcasts change events to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound change events
	broadcast chan *envelope

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// In-process observers receiving every event
	listenersMu sync.RWMutex
	listeners   []chan cloudevents.Event

	logger zerolog.Logger
}

// envelope is an encoded event plus the topic clients filter on
type envelope struct {
	topic string
	event cloudevents.Event
	data  []byte
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case env := <-h.broadcast:
			h.broadcastEnvelope(env)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.remoteAddr()).
		Strs("topics", client.topicList()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.logger.Info().
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.removeLocked(client)
	}
}

// broadcastEnvelope delivers an event to listeners and every subscribed client.
// Clients whose send buffer is full are dropped.
func (h *Hub) broadcastEnvelope(env *envelope) {
	h.notifyListeners(env.event)

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for client := range h.clients {
		if !client.subscribed(env.topic) {
			continue
		}
		select {
		case client.send <- env.data:
			delivered++
		default:
			h.logger.Warn().
				Str("addr", client.remoteAddr()).
				Msg("Dropping slow websocket client")
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("type", env.event.Type()).
		Int("clientCount", delivered).
		Msg("Change event broadcasted")
}

func (h *Hub) notifyListeners(event cloudevents.Event) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.listeners {
		// Use non-blocking send to avoid blocking on slow listeners
		select {
		case listener <- event:
		default:
			h.logger.Warn().Msg("Skipped slow event listener")
		}
	}
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// AddListener registers a channel to receive all events
func (h *Hub) AddListener(listener chan cloudevents.Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	h.listeners = append(h.listeners, listener)
}

// RemoveListener removes a listener from the hub
func (h *Hub) RemoveListener(listener chan cloudevents.Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.listeners {
		if l == listener {
			h.listeners[i] = h.listeners[len(h.listeners)-1]
			h.listeners = h.listeners[:len(h.listeners)-1]
			break
		}
	}
}
