package websocket_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	wsHandler "babysquares/internal/handler/websocket"
	"babysquares/internal/hub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSync string

func (f fixedSync) SyncMessage() ([]byte, error) { return []byte(f), nil }

func setupServer(t *testing.T) (*hub.Hub, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	h := hub.NewHub(fixedSync(`<h1 id="board-title" hx-swap-oob="true">Babysquares</h1>`))
	go h.Run()
	t.Cleanup(h.Stop)

	router := gin.New()
	router.GET("/ws", wsHandler.NewWebSocketHandler(h).HandleConnection)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readText(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	return string(msg)
}

func TestWebSocketHandler_SyncAndBroadcast(t *testing.T) {
	h, srv := setupServer(t)
	conn := dial(t, srv)

	// 连接后首先收到完整同步
	assert.Contains(t, readText(t, conn), `id="board-title"`)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.True(t, h.Broadcast([]byte(`<td id="cell-0-0" hx-swap-oob="true">Alice</td>`)))
	assert.Contains(t, readText(t, conn), "Alice")
}

func TestWebSocketHandler_DisconnectUnregisters(t *testing.T) {
	h, srv := setupServer(t)
	conn := dial(t, srv)
	readText(t, conn)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	conn.Close()

	assert.Eventually(t, func() bool { return h.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocketHandler_PlainHTTPRejected(t *testing.T) {
	_, srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
