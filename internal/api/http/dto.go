package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
}

// MoveRequest represents a human move. Row and column are zero-based.
type MoveRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// ResetRequest starts a new game in an existing room.
type ResetRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
}
