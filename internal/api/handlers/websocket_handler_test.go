package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-sakhi-api-server/internal/auth"
	"krishi-sakhi-api-server/internal/socket"
)

func wsTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.Init("ws-test-secret", "1h"))

	router := gin.New()
	handler := &WebSocketHandler{Hub: socket.NewHub()}
	router.GET("/ws", handler.ServeWs)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestServeWs_RequiresToken(t *testing.T) {
	srv := wsTestServer(t)

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServeWs_RepliesToPing(t *testing.T) {
	srv := wsTestServer(t)

	token, err := auth.GenerateJWT("user-1", "9876543210", "Ravi", "farmer")
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	pong := make(chan string, 1)
	conn.SetPongHandler(func(appData string) error {
		pong <- appData
		return nil
	})

	require.NoError(t, conn.WriteControl(websocket.PingMessage, []byte("beat"),
		time.Now().Add(time.Second)))

	// PONG được xử lý trong lúc đọc; server không gửi data message nào nên
	// ReadMessage thoát bằng deadline sau khi control frame đã về.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	conn.ReadMessage()

	select {
	case appData := <-pong:
		assert.Equal(t, "beat", appData)
	default:
		t.Fatal("no pong received for ping")
	}
}
