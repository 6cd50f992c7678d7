package http

import (
	"errors"
	"net/http"

	"gomoku/internal/game"
	"gomoku/internal/room"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrPlayerMismatch):
		return http.StatusForbidden
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidMove):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create new room
// @Description Create a room for one human player; the engine opens on the center cell
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Player info"
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		r, view := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{"roomCode": r.Code, "playerId": r.PlayerID, "room": view})
	}
}

// @Summary Get room state
// @Tags Room
// @Produce json
// @Param roomCode query string true "Room Code"
// @Router /room [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := rm.View(c.Query("roomCode"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}

// @Summary Delete a room
// @Tags Room
// @Param roomCode query string true "Room Code"
// @Router /room [delete]
func DeleteRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("roomCode")
		if _, ok := rm.Get(code); !ok {
			abortWith(c, room.ErrRoomNotFound)
			return
		}
		rm.Delete(code)
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// @Summary Candidate cells
// @Description Empty cells near existing stones, in the order the engine considers them
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		moves, err := rm.PossibleMoves(c.Query("roomCode"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves})
	}
}

// @Summary Player makes a move
// @Description Places the human stone and returns the engine's reply
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		res, err := rm.ApplyMove(req.RoomCode, req.PlayerID, req.Row, req.Col)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"room":       res.Room,
			"humanMove":  res.HumanMove,
			"engineMove": res.EngineMove,
			"winner":     res.Room.Winner,
		})
	}
}

// @Summary Restart the game in a room
// @Tags Game
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Room and player"
// @Router /reset [post]
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		view, err := rm.Reset(req.RoomCode, req.PlayerID)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}
