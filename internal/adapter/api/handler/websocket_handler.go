package handler

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"shopmart/internal/infrastructure/session"
	"shopmart/internal/infrastructure/websocket"
	"shopmart/pkg/logger"
)

// WebSocketHandler upgrades authenticated connections onto the session
// event channel, the push replacement for cookie polling.
type WebSocketHandler struct {
	manager  *websocket.Manager
	sessions *session.Manager
	upgrader gorilla.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, sessions *session.Manager, allowedOrigin string) *WebSocketHandler {
	return &WebSocketHandler{
		manager:  manager,
		sessions: sessions,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

func (h *WebSocketHandler) SessionChannel(c echo.Context) error {
	token, ok := session.TokenFromRequest(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	sess, err := h.sessions.Verify(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &websocket.Client{
		UserID: sess.UserID,
		Conn:   conn,
		Send:   make(chan []byte, 8),
	}

	h.manager.Register <- client
	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
