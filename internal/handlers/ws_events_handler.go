package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	wsWriteTimeout = 5 * time.Second
	wsSendBuffer   = 16
)

// WSEvent is the envelope pushed to websocket clients.
type WSEvent struct {
	Type         string               `json:"type"` // "notification"
	Notification *models.Notification `json:"notification,omitempty"`
}

// wsClient owns one connection; only its writePump writes to conn.
type wsClient struct {
	conn *websocket.Conn
	send chan WSEvent
}

func (c *wsClient) writePump() {
	for event := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := c.conn.WriteJSON(event); err != nil {
			logrus.WithError(err).Warn("Websocket write failed")
			c.conn.Close()
			return
		}
	}
}

// EventHub fans notifications out to every connected websocket client.
// Publish never blocks on a client: a client whose buffer is full is dropped.
type EventHub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

// NewEventHub accepts connections from the given origins; "*" allows any.
// Requests without an Origin header (non-browser clients) are always accepted.
func NewEventHub(allowedOrigins []string) *EventHub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &EventHub{
		clients: make(map[*wsClient]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Publish implements services.Publisher.
func (h *EventHub) Publish(n models.Notification) {
	event := WSEvent{Type: "notification", Notification: &n}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- event:
		default:
			logrus.Warn("Dropping slow websocket client")
			h.removeLocked(c)
		}
	}
}

// removeLocked unregisters c. h.mu must be held.
func (h *EventHub) removeLocked(c *wsClient) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	c.conn.Close()
}

// ClientCount reports the number of connected clients.
func (h *EventHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// GET /ws/events
func (h *EventHub) EventsWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := &wsClient{conn: conn, send: make(chan WSEvent, wsSendBuffer)}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	go client.writePump()
	logrus.WithField("remote", r.RemoteAddr).Info("WebSocket client connected")

	defer func() {
		h.mu.Lock()
		h.removeLocked(client)
		h.mu.Unlock()
		logrus.WithField("remote", r.RemoteAddr).Info("WebSocket client disconnected")
	}()

	// The stream is server-to-client; reading only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
