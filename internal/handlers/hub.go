package handlers

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ClientEvent is the inbound envelope. Data stays raw until the dispatcher
// knows which payload struct the type calls for.
type ClientEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ServerEvent is the outbound envelope.
type ServerEvent struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Client is one websocket connection. All writes go through the buffered
// send channel and a single writer goroutine, so event emission never blocks
// the coordinator and the connection only ever has one writer.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan ServerEvent
	once sync.Once
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.New().String(),
		conn: conn,
		send: make(chan ServerEvent, 64),
	}
}

func (c *Client) writePump() {
	for ev := range c.send {
		if err := c.conn.WriteJSON(ev); err != nil {
			break
		}
	}
	c.conn.Close()
}

// enqueue never blocks. A client that cannot drain 64 buffered events is
// effectively gone; dropping is better than stalling the room.
func (c *Client) enqueue(ev ServerEvent) {
	select {
	case c.send <- ev:
	default:
		log.Warn().Str("conn", c.ID).Str("event", ev.Type).Msg("send buffer full, dropping event")
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub tracks live connections and their room membership and fans events out
// to them. It implements services.Broadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// unregister closes the send channel while still holding the lock, so a
// concurrent fan-out that found the client can never enqueue onto a channel
// closed out from under it.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, members := range h.rooms {
		delete(members, c.ID)
	}
	delete(h.clients, c.ID)
	c.close()
}

func (h *Hub) Join(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[connID]
	if !ok {
		return
	}
	members := h.rooms[roomID]
	if members == nil {
		members = make(map[string]*Client)
		h.rooms[roomID] = members
	}
	members[connID] = c
}

func (h *Hub) Leave(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members := h.rooms[roomID]
	delete(members, connID)
	if len(members) == 0 {
		delete(h.rooms, roomID)
	}
}

func (h *Hub) ToConn(connID, event string, data any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.clients[connID]; ok {
		c.enqueue(ServerEvent{Type: event, Data: data})
	}
}

func (h *Hub) ToRoom(roomID, event string, data any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.rooms[roomID] {
		c.enqueue(ServerEvent{Type: event, Data: data})
	}
}

func (h *Hub) ToRoomExcept(roomID, exceptConnID, event string, data any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.rooms[roomID] {
		if id == exceptConnID {
			continue
		}
		c.enqueue(ServerEvent{Type: event, Data: data})
	}
}
