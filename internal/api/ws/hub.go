package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"micattix/internal/game"
	"micattix/internal/logger"
)

// Hub fans room broadcasts out to websocket subscribers and feeds incoming
// move frames into the room manager.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]struct{}
	mgr   RoomManager
}

func NewHub(mgr RoomManager) *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
		mgr:   mgr,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type frame struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type moveFrame struct {
	PlayerID string `json:"player_id"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// HandleWS upgrades the connection and pumps frames until the client hangs
// up. Accepted moves reach every subscriber through the room broadcast
// path, so only rejections are answered on the submitting connection.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if !h.mgr.Exists(roomCode) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg frame
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Action {
		case "move":
			h.handleMove(conn, roomCode, msg.Data)
		default:
			logger.Debug("unknown ws action", "action", msg.Action)
		}
	}
}

func (h *Hub) handleMove(conn *websocket.Conn, roomCode string, data json.RawMessage) {
	var mv moveFrame
	if err := json.Unmarshal(data, &mv); err != nil {
		h.reply(conn, "error", gin.H{"message": "invalid move payload"})
		return
	}
	target := game.Coord{Row: mv.Row, Col: mv.Col}
	if err := h.mgr.ApplyMove(roomCode, mv.PlayerID, target); err != nil {
		h.reply(conn, "error", gin.H{"message": err.Error()})
	}
}

// reply shares h.mu with Broadcast; gorilla permits one writer per conn.
func (h *Hub) reply(conn *websocket.Conn, action string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(gin.H{"action": action, "data": data}); err != nil {
		logger.Debug("ws reply failed", "error", err)
	}
}

// Broadcast sends one frame to every subscriber of the room. Connections
// that fail the write are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	msg := gin.H{"action": action, "data": data}
	for conn := range clients {
		if err := conn.WriteJSON(msg); err != nil {
			_ = conn.Close()
			delete(clients, conn)
		}
	}
}
