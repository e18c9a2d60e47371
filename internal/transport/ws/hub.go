package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans admin events out to every connected admin dashboard
type Hub struct {
	adminConns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
	done       chan struct{}
}

// Connection represents a WebSocket connection
type Connection struct {
	AdminID string
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub() *Hub {
	h := &Hub{
		adminConns: make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.adminConns[conn] = true
			h.mu.Unlock()
			log.Printf("Admin %s connected", conn.AdminID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.adminConns[conn]; ok {
				delete(h.adminConns, conn)
				close(conn.Send)
				log.Printf("Admin %s disconnected", conn.AdminID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("Failed to encode %s message: %v", msg.Type, err)
				continue
			}
			h.mu.RLock()
			for conn := range h.adminConns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.adminConns {
				close(conn.Send)
				delete(h.adminConns, conn)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Count returns the number of connected admins
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.adminConns)
}

// Close stops the hub and closes every connection's send channel
func (h *Hub) Close() {
	close(h.done)
}

// BroadcastToAdmins sends a message to every admin (implements service.Broadcaster)
func (h *Hub) BroadcastToAdmins(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to encode %s payload: %v", msgType, err)
		return
	}
	select {
	case h.broadcast <- &Message{Type: MessageType(msgType), Payload: data}:
	default:
		log.Printf("Dropping %s broadcast: hub queue full", msgType)
	}
}
