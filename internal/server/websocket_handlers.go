package server

import (
	"log/slog"

	"devconnect/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// UpgradeRequired rejects plain HTTP requests to WebSocket endpoints.
func UpgradeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// FeedWebsocketHandler upgrades the connection and streams feed events to the
// client until it disconnects.
func (s *Server) FeedWebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userID").(uint)
		if !ok {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}

		if s.hub == nil || !s.flags.EnabledOrDefault(realtimeFeedFlag, userID, true) {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"realtime feed unavailable"}`))
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			middleware.Logger.Warn("websocket registration rejected",
				slog.Uint64("user_id", uint64(userID)),
				slog.Any("error", err))
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		middleware.Logger.Info("websocket connected",
			slog.Uint64("user_id", uint64(userID)))

		go client.WritePump()

		// Read pump runs in the handler goroutine and blocks until disconnect.
		client.ReadPump()

		middleware.Logger.Info("websocket disconnected",
			slog.Uint64("user_id", uint64(userID)))
	})
}
