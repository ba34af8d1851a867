package events

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweaters/internal/models"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, r.URL.Query().Get("game"))
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?game=" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_DeliversToSubscribersOfGame(t *testing.T) {
	hub, srv := startHub(t)

	g1 := dial(t, srv, "g1")
	g2 := dial(t, srv, "g2")
	require.Eventually(t, func() bool {
		return hub.Subscribers("g1") == 1 && hub.Subscribers("g2") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish(models.SessionEvent{
		Type:    models.EventDraw,
		GameID:  "g1",
		OwnerID: "u1",
		Round:   3,
		Cards:   map[string]string{"Hearts": "Q"},
	})

	g1.SetReadDeadline(time.Now().Add(time.Second))
	var got models.SessionEvent
	require.NoError(t, g1.ReadJSON(&got))
	assert.Equal(t, models.EventDraw, got.Type)
	assert.Equal(t, 3, got.Round)
	assert.Equal(t, "Q", got.Cards["Hearts"])

	// g2 não recebe nada
	g2.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := g2.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, srv := startHub(t)

	conn := dial(t, srv, "g1")
	require.Eventually(t, func() bool { return hub.Subscribers("g1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Subscribers("g1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(nil)

	// sem Run: o buffer absorve e o excedente é descartado sem bloquear
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(models.SessionEvent{GameID: "g1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}
