package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

const (
	MessageTopic     = "topic"
	MessageDashboard = "dashboard"
	MessagePersonal  = "personal"
)

// Message is the frame sent to websocket sessions.
type Message struct {
	Type    string `json:"type"`
	Topic   string `json:"topic,omitempty"`
	Payload any    `json:"payload"`
}

// Client is one dashboard session. A session with no topics receives every
// topic; personal messages go to sessions with a matching user id.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	UserID string
	topics map[string]bool
}

func (c *Client) wants(topic string) bool {
	return len(c.topics) == 0 || c.topics[topic]
}

// Hub maintains the set of active sessions.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryWebsocket)
	logger.Info("WebSocket client registered", zap.String("remote", c.conn.RemoteAddr().String()), zap.String("user_id", c.UserID))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeWS upgrades the request. Query: user_id, topics (comma separated).
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryWebsocket)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		UserID: r.URL.Query().Get("user_id"),
		topics: make(map[string]bool),
	}
	for _, t := range strings.Split(r.URL.Query().Get("topics"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			client.topics[t] = true
		}
	}

	h.register(client)

	go client.writePump()
	go client.readPump()
}

func (h *Hub) deliver(msg Message, match func(c *Client) bool) (int, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s message: %w", msg.Type, err)
	}

	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryWebsocket)

	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for c := range h.clients {
		if !match(c) {
			continue
		}
		select {
		case c.send <- data:
			sent++
		default:
			logger.Warn("WebSocket client send buffer full, removing", zap.String("remote", c.conn.RemoteAddr().String()))
			h.removeLocked(c)
		}
	}
	return sent, nil
}

func (h *Hub) PublishTopic(ctx context.Context, topic string, payload any) error {
	_, err := h.deliver(Message{Type: MessageTopic, Topic: topic, Payload: payload}, func(c *Client) bool {
		return c.wants(topic)
	})
	return err
}

func (h *Hub) PushDashboard(ctx context.Context, update DashboardUpdate) error {
	_, err := h.deliver(Message{Type: MessageDashboard, Topic: TopicDashboard, Payload: update}, func(c *Client) bool {
		return c.wants(TopicDashboard)
	})
	return err
}

// PushPersonal reaches every open session of userID. A user with no open
// session is not an error.
func (h *Hub) PushPersonal(ctx context.Context, userID string, alert models.AlertView) error {
	n, err := h.deliver(Message{Type: MessagePersonal, Payload: alert}, func(c *Client) bool {
		return c.UserID == userID
	})
	if err == nil && n == 0 {
		logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryWebsocket)
		logger.Debug("No open session for user", zap.String("user_id", userID))
	}
	return err
}

// Close drops every session; write pumps send a close frame.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (c *Client) readPump() {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryWebsocket)
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { return c.conn.SetReadDeadline(time.Now().Add(pongWait)) })

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryWebsocket)
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("WebSocket write error", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
