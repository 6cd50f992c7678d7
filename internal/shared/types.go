package shared

import (
	"sync"
	"time"

	"gomoku/internal/game"
)

// Room is one player's match against the engine. Every access to Game goes
// through Lock/Unlock.
type Room struct {
	mu sync.Mutex

	Code       string
	PlayerID   string
	PlayerName string
	Game       *game.Game
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

// View copies the room state for encoding. The caller must hold the lock.
func (r *Room) View() RoomView {
	g := r.Game.Snapshot()
	v := RoomView{
		Code:        r.Code,
		PlayerName:  r.PlayerName,
		Board:       g.Board,
		ToMove:      g.ToMove.String(),
		Status:      g.Status,
		History:     g.History,
		WinningLine: g.WinningLine,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if w := g.Winner(); w != game.None {
		v.Winner = w.String()
	}
	if last, ok := g.LastMove(); ok {
		v.LastMove = &last
	}
	return v
}

type RoomView struct {
	Code        string            `json:"code"`
	PlayerName  string            `json:"playerName"`
	Board       game.Board        `json:"board"`
	ToMove      string            `json:"toMove"`
	Status      game.Status       `json:"status"`
	Winner      string            `json:"winner,omitempty"`
	History     []game.PlacedMove `json:"history"`
	LastMove    *game.PlacedMove  `json:"lastMove,omitempty"`
	WinningLine []game.Move       `json:"winningLine,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type MoveResult struct {
	Room       RoomView   `json:"room"`
	HumanMove  game.Move  `json:"humanMove"`
	EngineMove *game.Move `json:"engineMove,omitempty"`
}
