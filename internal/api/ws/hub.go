package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const writeWait = 5 * time.Second

type Message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type inbound struct {
	Action string `json:"action"`
	Data   struct {
		PlayerID string `json:"player_id"`
		Row      int    `json:"row"`
		Col      int    `json:"col"`
	} `json:"data"`
}

// client serialises writes; gorilla connections allow one writer at a time.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(payload)
}

func (c *client) writeLocked(payload []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	logger      zerolog.Logger
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		logger:      log.With().Str("component", "ws").Logger(),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if _, err := h.roomManager.View(roomCode); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("upgrade-failed")
		return
	}
	cl := &client{conn: conn}
	defer func() {
		h.unregister(roomCode, cl)
		_ = conn.Close()
	}()

	// Broadcasts wait on cl.mu, so nothing reaches the client before the
	// initial state, and every change after that state is delivered.
	cl.mu.Lock()
	h.register(roomCode, cl)
	view, err := h.roomManager.View(roomCode)
	if err != nil {
		h.sendLocked(cl, Message{Action: "error", Data: gin.H{"error": err.Error()}})
		cl.mu.Unlock()
		return
	}
	h.sendLocked(cl, Message{Action: "state", Data: gin.H{"room": view}})
	cl.mu.Unlock()
	h.logger.Debug().Str("room", roomCode).Msg("client-connected")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			h.logger.Debug().Err(err).Str("room", roomCode).Msg("client-disconnected")
			return
		}
		var msg inbound
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			h.send(cl, Message{Action: "error", Data: gin.H{"error": "invalid message"}})
			continue
		}

		switch msg.Action {
		case "human_move":
			// The manager broadcasts the outcome to every client in the room.
			if _, err := h.roomManager.ApplyMove(roomCode, msg.Data.PlayerID, msg.Data.Row, msg.Data.Col); err != nil {
				h.send(cl, Message{Action: "error", Data: gin.H{"error": err.Error()}})
			}
		default:
			h.send(cl, Message{Action: "error", Data: gin.H{"error": "unknown action " + msg.Action}})
		}
	}
}

func (h *Hub) register(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
}

func (h *Hub) unregister(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	delete(clients, cl)
	if len(clients) == 0 {
		delete(h.rooms, roomCode)
	}
}

func (h *Hub) ClientCount(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) send(cl *client, msg Message) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	h.sendLocked(cl, msg)
}

// sendLocked is send for callers already holding cl.mu.
func (h *Hub) sendLocked(cl *client, msg Message) {
	payload, err := sonic.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("action", msg.Action).Msg("encode-failed")
		return
	}
	if err := cl.writeLocked(payload); err != nil {
		h.logger.Debug().Err(err).Msg("write-failed")
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	payload, err := sonic.Marshal(Message{Action: action, Data: data})
	if err != nil {
		h.logger.Error().Err(err).Str("action", action).Msg("encode-failed")
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.write(payload); err != nil {
			h.logger.Debug().Err(err).Str("room", roomCode).Msg("broadcast-failed")
			h.unregister(roomCode, cl)
			_ = cl.conn.Close()
		}
	}
}
