// Package ws provides the WebSocket inbound adapter: it upgrades echo
// routes to gorilla/websocket connections, manages each connection's
// registry lifecycle, and runs the per-connection read loop.
package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeTimeout bounds a single push so one stalled client cannot block
// the dispatcher's broadcast loop.
const writeTimeout = 5 * time.Second

// connHandle adapts one gorilla/websocket connection to notifier.Handle.
// Gorilla connections permit at most one concurrent writer, while pushes
// arrive from dispatcher goroutines and the read loop's echo path
// concurrently; the mutex serializes them.
type connHandle struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newConnHandle(conn *websocket.Conn) *connHandle {
	return &connHandle{conn: conn}
}

// Push writes the payload as one text frame under the write deadline.
// A broken or stalled connection fails fast; the caller unregisters it.
func (h *connHandle) Push(payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return h.conn.WriteMessage(websocket.TextMessage, payload)
}

// close sends a close frame and tears the connection down.
func (h *connHandle) close(code int, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	deadline := time.Now().Add(writeTimeout)
	_ = h.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), deadline)
	_ = h.conn.Close()
}
