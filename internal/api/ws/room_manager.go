package ws

import "gomoku/internal/shared"

type RoomManager interface {
	View(roomCode string) (shared.RoomView, error)
	ApplyMove(roomCode, playerID string, row, col int) (shared.MoveResult, error)
}
