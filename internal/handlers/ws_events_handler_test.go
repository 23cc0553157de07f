package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *EventHub, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.EventsWebSocketHandler))
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	return websocket.DefaultDialer.Dial(url, header)
}

func TestEventHub_PublishReachesClients(t *testing.T) {
	hub := NewEventHub([]string{"http://localhost:3000"})
	defer hub.Close()

	conn, _, err := dialHub(t, hub, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	target := int64(7)
	hub.Publish(models.Notification{ID: 1, Type: "achievement_unlocked", Title: "🏆 First Step", TargetID: &target})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event WSEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "notification", event.Type)
	require.NotNil(t, event.Notification)
	assert.Equal(t, "🏆 First Step", event.Notification.Title)
	assert.Equal(t, int64(7), *event.Notification.TargetID)
}

func TestEventHub_DisconnectRemovesClient(t *testing.T) {
	hub := NewEventHub(nil)

	conn, _, err := dialHub(t, hub, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestEventHub_RejectsForeignOrigin(t *testing.T) {
	hub := NewEventHub([]string{"http://localhost:3000"})

	_, resp, err := dialHub(t, hub, http.Header{"Origin": []string{"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestEventHub_PublishDoesNotWaitForStalledClient(t *testing.T) {
	hub := NewEventHub(nil)
	defer hub.Close()

	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := hub.upgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		conns <- conn
	}))
	defer srv.Close()

	peer, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer peer.Close()

	// No write pump drains this client, so any send to it would block.
	stalled := &wsClient{conn: <-conns, send: make(chan WSEvent)}
	hub.mu.Lock()
	hub.clients[stalled] = struct{}{}
	hub.mu.Unlock()

	done := make(chan struct{})
	go func() {
		hub.Publish(models.Notification{ID: 1, Title: "ping"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a stalled client")
	}
	assert.Equal(t, 0, hub.ClientCount())
}
