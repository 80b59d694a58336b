package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestNewChangeEvent(t *testing.T) {
	event, err := NewChangeEvent("council.created", "2027", map[string]int{"gradYear": 2027})
	require.NoError(t, err)

	assert.Equal(t, "council.created", event.Type())
	assert.Equal(t, EventSource, event.Source())
	assert.Equal(t, "2027", event.Subject())
	assert.Equal(t, cloudevents.ApplicationJSON, event.DataContentType())
	assert.NotEmpty(t, event.ID())

	var payload map[string]int
	require.NoError(t, event.DataAs(&payload))
	assert.Equal(t, 2027, payload["gradYear"])
}

func TestNotifierDeliversToListeners(t *testing.T) {
	hub := startHub(t)
	listener := make(chan cloudevents.Event, 1)
	hub.AddListener(listener)
	defer hub.RemoveListener(listener)

	require.NoError(t, NewNotifier(hub).Publish(context.Background(), "advisor.deleted", "7", nil))

	select {
	case event := <-listener:
		assert.Equal(t, "advisor.deleted", event.Type())
		assert.Equal(t, "7", event.Subject())
	case <-time.After(time.Second):
		t.Fatal("listener did not receive the event")
	}
}

func TestWebSocketClientReceivesSubscribedTopics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)

	router := gin.New()
	router.GET("/ws/changes", NewHandler(hub, nil, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/changes?topics=council"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientsCount() == 1 }, time.Second, 10*time.Millisecond)

	notifier := NewNotifier(hub)
	ctx := context.Background()
	require.NoError(t, notifier.Publish(ctx, "advisor.created", "1", nil))
	require.NoError(t, notifier.Publish(ctx, "council.updated", "2027", map[string]string{"name": "Third Year Council"}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "council.updated", got["type"], "advisor topic is filtered out")
	assert.Equal(t, "2027", got["subject"])
}
