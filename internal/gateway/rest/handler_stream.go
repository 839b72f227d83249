package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"primedex/internal/events"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next message from the peer.
	readWait = 5 * time.Minute

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// StreamRequest is one query sent by the client over the socket.
type StreamRequest struct {
	Number uint64 `json:"number"`
	Count  int    `json:"count"`
}

// StreamFrame is one server-to-client message. Type is "match",
// "done" or "error".
type StreamFrame struct {
	Type     string `json:"type"`
	Prime    uint64 `json:"prime,omitempty"`
	Distance uint64 `json:"distance,omitempty"`
	Count    int    `json:"count,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkStreamOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	for {
		conn.SetReadDeadline(time.Now().Add(readWait))
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket connection closed", "error", err)
			}
			return
		}

		var req StreamRequest
		if err := json.Unmarshal(message, &req); err != nil {
			h.streamWrite(conn, StreamFrame{Type: "error", Message: "invalid request"})
			continue
		}

		count, err := h.clampCount(req.Count)
		if err != nil {
			h.streamWrite(conn, StreamFrame{Type: "error", Message: err.Error()})
			continue
		}

		start := time.Now()
		matches := h.primes.ClosestPrimes(req.Number, count)
		h.record(events.KindClosest, req.Number, count, len(matches), time.Since(start))

		for _, m := range matches {
			if !h.streamWrite(conn, StreamFrame{Type: "match", Prime: m.Prime, Distance: m.Distance}) {
				return
			}
		}
		if !h.streamWrite(conn, StreamFrame{Type: "done", Count: len(matches)}) {
			return
		}
	}
}

func (h *Handler) streamWrite(conn *websocket.Conn, frame StreamFrame) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(frame); err != nil {
		slog.Warn("WebSocket write failed", "error", err)
		return false
	}
	return true
}

// checkStreamOrigin validates WebSocket connection origins. It allows
// empty origins (non-browser clients), configured origins, and, when
// dev origins are enabled, any origin on the same host as the request.
func (h *Handler) checkStreamOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range h.cfg.Stream.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}

	if !h.cfg.Stream.AllowDevOrigin {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}

	originHost := strings.Split(u.Host, ":")[0]
	requestHost := strings.Split(r.Host, ":")[0]
	return strings.EqualFold(originHost, requestHost)
}
