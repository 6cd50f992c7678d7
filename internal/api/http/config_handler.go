package http

import (
	"net/http"

	"gomoku/internal/game"
	"gomoku/internal/room"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler returns the engine settings rooms are created with.
// @Summary Get engine configuration
// @Tags Config
// @Produce json
// @Router /config [get]
func GetConfigHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"engine":    rm.Config(),
			"winLength": game.WinLength,
		})
	}
}
