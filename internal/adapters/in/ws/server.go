package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/notifier"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Server owns the WebSocket endpoints for customer and restaurant live
// sessions. Each accepted connection is registered under its audience
// key for the lifetime of its read loop and unregistered on any exit.
type Server struct {
	registry *notifier.Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewServer creates the WebSocket server over the shared connection registry.
func NewServer(registry *notifier.Registry, logger *slog.Logger) *Server {
	return &Server{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Session auth is out of scope; the API surface is trusted.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws"),
	}
}

// HandleCustomer handles GET /ws/customers/:id - opens a customer live session.
func (s *Server) HandleCustomer(ctx echo.Context) error {
	return s.serve(ctx, notifier.CustomerKey)
}

// HandleRestaurant handles GET /ws/restaurants/:id - opens a restaurant
// dashboard live session.
func (s *Server) HandleRestaurant(ctx echo.Context) error {
	return s.serve(ctx, notifier.RestaurantKey)
}

// serve upgrades the request and runs the connection lifecycle:
// validate id, register, ack, read until the client goes away,
// unregister. The id is validated after the upgrade so the client
// receives a proper policy-violation close frame instead of a failed
// handshake; an invalid id is never registered.
func (s *Server) serve(ctx echo.Context, keyFor func(kernel.UUID) notifier.AudienceKey) error {
	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	handle := newConnHandle(conn)

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		s.logger.Warn("rejecting connection with invalid id",
			"id", ctx.Param("id"), "error", err)
		handle.close(websocket.ClosePolicyViolation, "invalid id")
		return nil
	}

	key := keyFor(id)
	s.registry.Register(key, handle)
	defer func() {
		s.registry.Unregister(key, handle)
		_ = conn.Close()
		s.logger.Debug("connection closed", "audience", key.String())
	}()

	if err = s.sendConnectedAck(handle, key); err != nil {
		s.logger.Warn("connected ack failed", "audience", key.String(), "error", err)
		return nil
	}

	s.logger.Debug("connection opened",
		"audience", key.String(), "sessions", s.registry.CountFor(key))

	s.readLoop(handle, key)
	return nil
}

// sendConnectedAck pushes the one-time connected acknowledgement to the
// freshly registered handle only, never to the audience's other sessions.
func (s *Server) sendConnectedAck(handle *connHandle, key notifier.AudienceKey) error {
	ack, err := notifier.NewConnectedPayload(key)
	if err != nil {
		return err
	}
	return handle.Push(ack)
}

// readLoop consumes inbound frames until the client disconnects.
// Heartbeats are answered with the server's own time; any other text
// frame is echoed back verbatim; non-text frames are logged and ignored.
// Nothing a client sends can close another session.
func (s *Server) readLoop(handle *connHandle, key notifier.AudienceKey) {
	for {
		messageType, payload, err := handle.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read failed", "audience", key.String(), "error", err)
			}
			return
		}

		if messageType != websocket.TextMessage {
			s.logger.Debug("ignoring non-text frame",
				"audience", key.String(), "message_type", messageType)
			continue
		}

		if err = s.answer(handle, payload); err != nil {
			s.logger.Debug("write failed", "audience", key.String(), "error", err)
			return
		}
	}
}

// answer replies to one inbound text frame: a heartbeat gets a heartbeat
// carrying the server's time, everything else is echoed back unchanged.
func (s *Server) answer(handle *connHandle, payload []byte) error {
	var envelope struct {
		Type string `json:"type"`
	}
	if json.Unmarshal(payload, &envelope) == nil && envelope.Type == notifier.TypeHeartbeat {
		heartbeat, err := notifier.NewHeartbeatPayload()
		if err != nil {
			return err
		}
		return handle.Push(heartbeat)
	}

	return handle.Push(payload)
}
