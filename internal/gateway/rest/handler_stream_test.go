package rest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primedex/internal/core/prime"
	gwconfig "primedex/internal/gateway/config"
)

func dialStream(t *testing.T) *websocket.Conn {
	t.Helper()

	mux := newTestMux(t)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/primes/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandleStream(t *testing.T) {
	conn := dialStream(t)

	require.NoError(t, conn.WriteJSON(StreamRequest{Number: 100, Count: 2}))

	var frames []StreamFrame
	for {
		var frame StreamFrame
		require.NoError(t, conn.ReadJSON(&frame))
		frames = append(frames, frame)
		if frame.Type == "done" {
			break
		}
	}

	require.Len(t, frames, 3)
	assert.Equal(t, StreamFrame{Type: "match", Prime: 101, Distance: 1}, frames[0])
	assert.Equal(t, StreamFrame{Type: "match", Prime: 103, Distance: 3}, frames[1])
	assert.Equal(t, StreamFrame{Type: "done", Count: 2}, frames[2])
}

func TestHandleStream_MultipleQueries(t *testing.T) {
	conn := dialStream(t)

	for _, number := range []uint64{10, 1000} {
		require.NoError(t, conn.WriteJSON(StreamRequest{Number: number, Count: 1}))

		var match, done StreamFrame
		require.NoError(t, conn.ReadJSON(&match))
		require.NoError(t, conn.ReadJSON(&done))

		assert.Equal(t, "match", match.Type)
		assert.Equal(t, "done", done.Type)
	}
}

func TestHandleStream_InvalidRequest(t *testing.T) {
	conn := dialStream(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	var frame StreamFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "error", frame.Type)

	// Connection stays usable after a bad request.
	require.NoError(t, conn.WriteJSON(StreamRequest{Number: 4, Count: 1}))
	var match StreamFrame
	require.NoError(t, conn.ReadJSON(&match))
	assert.Equal(t, StreamFrame{Type: "match", Prime: 5, Distance: 1}, match)
}

func TestCheckStreamOrigin(t *testing.T) {
	cfg := gwconfig.DefaultGatewayConfig()
	cfg.Stream.AllowedOrigins = []string{"https://app.example.com"}
	cfg.Stream.AllowDevOrigin = false
	h := NewHandler(prime.NewService(oracleSource{}), cfg)

	tests := []struct {
		name   string
		origin string
		host   string
		want   bool
	}{
		{"no origin", "", "api.example.com", true},
		{"allowed origin", "https://app.example.com", "api.example.com", true},
		{"disallowed origin", "https://evil.example.com", "api.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/ws/primes/stream", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, h.checkStreamOrigin(req))
		})
	}
}

func TestCheckStreamOrigin_DevSameHost(t *testing.T) {
	cfg := gwconfig.DefaultGatewayConfig()
	cfg.Stream.AllowedOrigins = []string{"https://app.example.com"}
	cfg.Stream.AllowDevOrigin = true
	h := NewHandler(prime.NewService(oracleSource{}), cfg)

	req := httptest.NewRequest("GET", "/ws/primes/stream", nil)
	req.Host = "localhost:8080"
	req.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, h.checkStreamOrigin(req))
}
