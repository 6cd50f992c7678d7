package http

import (
	"net/http"

	"gomoku/internal/api/ws"
	"gomoku/internal/room"

	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.GET("/room", GetRoomHandler(rm))
	r.DELETE("/room", DeleteRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/reset", ResetHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", GetConfigHandler(rm))

	return r
}
