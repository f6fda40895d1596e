package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/prakashgyan/mafiamanagerirl/internal/cache"
	"github.com/prakashgyan/mafiamanagerirl/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub       *Hub
	authSvc   *service.AuthService
	snapshots cache.SnapshotCache
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, snapshots cache.SnapshotCache) *Handler {
	return &Handler{
		hub:       hub,
		authSvc:   authSvc,
		snapshots: snapshots,
	}
}

// HostWS handles GET /v1/ws/games/{id}/host
func (h *Handler) HostWS(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		GameID: gameID,
		IsHost: true,
		Send:   make(chan []byte, 256),
		Hub:    h.hub,
	}

	h.hub.Register(conn)
	h.sendLatestSnapshot(r, conn)

	log.Printf("Host %s connected to game %s via WebSocket", claims.UserID, gameID)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

// WatchWS handles GET /v1/ws/games/{id}/watch. Viewers are passive and
// anonymous; they never mutate authoritative state.
func (h *Handler) WatchWS(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		GameID: gameID,
		Send:   make(chan []byte, 256),
		Hub:    h.hub,
	}

	h.hub.Register(conn)
	h.sendLatestSnapshot(r, conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

// sendLatestSnapshot replays the last broadcast state so a late or
// reconnecting subscriber catches up without waiting for the next host
// mutation. The viewer's own freshness check makes a duplicate harmless.
func (h *Handler) sendLatestSnapshot(r *http.Request, conn *Connection) {
	if h.snapshots == nil {
		return
	}
	snap, err := h.snapshots.Get(r.Context(), conn.GameID)
	if err != nil {
		log.Printf("Failed to load cached snapshot for game %s: %v", conn.GameID, err)
		return
	}
	if snap == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	select {
	case conn.Send <- data:
	default:
	}
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		// Inbound frames are ignored; all mutation goes through the
		// REST command surface.
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
