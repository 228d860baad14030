package tasks

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Socket is the write side of a websocket connection. *websocket.Conn
// satisfies it.
type Socket interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// client serializes writes to one socket; a connection allows a single
// concurrent writer.
type client struct {
	mu     sync.Mutex
	socket Socket
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return c.socket.WriteMessage(websocket.TextMessage, data)
}

// Hub keeps the open websocket connections of each user and pushes order
// notifications to them.
type Hub struct {
	mu      sync.Mutex
	clients map[uint]map[Socket]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[Socket]*client)}
}

func (h *Hub) Add(userID uint, socket Socket) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[Socket]*client)
	}
	h.clients[userID][socket] = &client{socket: socket}
}

// Remove forgets socket and closes it.
func (h *Hub) Remove(userID uint, socket Socket) {
	h.mu.Lock()
	conns := h.clients[userID]
	_, ok := conns[socket]
	if ok {
		delete(conns, socket)
		if len(conns) == 0 {
			delete(h.clients, userID)
		}
	}
	h.mu.Unlock()

	if ok {
		socket.Close()
	}
}

// Connections returns how many sockets userID has open.
func (h *Hub) Connections(userID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[userID])
}

// Publish sends v as a JSON text frame to every socket of userID. Sockets
// that fail to accept the write are dropped. Writes happen outside the hub
// lock, so a slow socket only delays its own delivery.
func (h *Hub) Publish(userID uint, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("WebSocket marshal error: %v", err)
		return
	}

	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients[userID]))
	for _, c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		if err := c.write(data); err != nil {
			log.Printf("WebSocket write error: %v", err)
			h.Remove(userID, c.socket)
		}
	}
}
