package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub manages WebSocket connections for games. Each game has at most
// one host connection (the authoritative controller's private channel)
// and any number of anonymous viewer connections (dashboards, displays).
type Hub struct {
	hostConns   map[string]*Connection
	viewerConns map[string]map[*Connection]bool // gameID -> conns

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *broadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	GameID string
	IsHost bool
	Send   chan []byte
	Hub    *Hub
}

type broadcastMessage struct {
	GameID   string
	HostOnly bool
	Data     []byte
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		hostConns:   make(map[string]*Connection),
		viewerConns: make(map[string]map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *broadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsHost {
				h.hostConns[conn.GameID] = conn
				log.Printf("Host connected to game %s", conn.GameID)
			} else {
				if h.viewerConns[conn.GameID] == nil {
					h.viewerConns[conn.GameID] = make(map[*Connection]bool)
				}
				h.viewerConns[conn.GameID][conn] = true
				log.Printf("Viewer connected to game %s (%d watching)", conn.GameID, len(h.viewerConns[conn.GameID]))
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsHost {
				if existing, ok := h.hostConns[conn.GameID]; ok && existing == conn {
					delete(h.hostConns, conn.GameID)
					close(conn.Send)
					log.Printf("Host disconnected from game %s", conn.GameID)
				}
			} else {
				if viewers, ok := h.viewerConns[conn.GameID]; ok && viewers[conn] {
					delete(viewers, conn)
					close(conn.Send)
					if len(viewers) == 0 {
						delete(h.viewerConns, conn.GameID)
					}
					log.Printf("Viewer disconnected from game %s", conn.GameID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			if conn, ok := h.hostConns[msg.GameID]; ok {
				select {
				case conn.Send <- msg.Data:
				default:
					// Drop message if buffer full
				}
			}
			if !msg.HostOnly {
				for conn := range h.viewerConns[msg.GameID] {
					select {
					case conn.Send <- msg.Data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToViewers sends a payload to the host and every viewer of a
// game (implements service.Broadcaster).
func (h *Hub) BroadcastToViewers(gameID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal broadcast for game %s: %v", gameID, err)
		return
	}
	h.broadcast <- &broadcastMessage{GameID: gameID, Data: data}
}

// BroadcastToHost sends a payload to the host connection only
// (implements service.Broadcaster).
func (h *Hub) BroadcastToHost(gameID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal host message for game %s: %v", gameID, err)
		return
	}
	h.broadcast <- &broadcastMessage{GameID: gameID, HostOnly: true, Data: data}
}
