// README: Websocket hub broadcasting driver events to ops subscribers.
package ws

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"minicab/internal/modules/driver"
)

// Event is the JSON envelope pushed to every connected subscriber.
type Event struct {
	Type   string        `json:"type"`
	Driver driver.Driver `json:"driver"`
}

// Hub owns all websocket connections. All client state is confined to the
// Run goroutine; other goroutines interact through channels only.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// Process is shutting down; connections die with it.
			return
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("ops subscriber connected", zap.String("client_id", client.id))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("ops subscriber disconnected", zap.String("client_id", client.id))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than stall the hub.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish satisfies driver.EventSink. Events are dropped when the broadcast
// buffer is full so registry operations never block on slow subscribers.
func (h *Hub) Publish(event string, d driver.Driver) {
	payload, err := json.Marshal(Event{Type: event, Driver: d})
	if err != nil {
		h.log.Warn("event marshal failed", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn("event dropped, broadcast buffer full", zap.String("event", event))
	}
}
