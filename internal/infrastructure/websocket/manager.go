package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"shopmart/pkg/logger"
)

// Client is one browser tab's connection. A user may hold several at once.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Event is the wire format pushed to connected tabs.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

const (
	EventSessionRevoked = "session_revoked"
	EventUserUpdated    = "user_updated"
)

// Manager fans session events out to every open tab of a user. It replaces
// interval polling for cross-tab state reconciliation.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if m.clients[client.UserID] == nil {
					m.clients[client.UserID] = make(map[*Client]struct{})
				}
				m.clients[client.UserID][client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Session channel registered for user %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if tabs, ok := m.clients[client.UserID]; ok {
					if _, ok := tabs[client]; ok {
						delete(tabs, client)
						close(client.Send)
						if len(tabs) == 0 {
							delete(m.clients, client.UserID)
						}
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser pushes an event to every open tab of a user. Tabs with a full
// send buffer are dropped; the client reconnects and resyncs.
func (m *Manager) SendToUser(userID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode session event: %v", err)
		return
	}

	m.mutex.RLock()
	tabs := make([]*Client, 0, len(m.clients[userID]))
	for client := range m.clients[userID] {
		tabs = append(tabs, client)
	}
	m.mutex.RUnlock()

	for _, client := range tabs {
		select {
		case client.Send <- payload:
		default:
			m.Unregister <- client
		}
	}
}

// ReadPump drains the connection until it closes; inbound messages are
// ignored, the channel is push-only.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Session channel closed: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
