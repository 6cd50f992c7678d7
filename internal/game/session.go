package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
)

// Game is one human-versus-engine match. It is not safe for concurrent use.
type Game struct {
	Board       Board        `json:"board"`
	ToMove      Side         `json:"toMove"`
	Status      Status       `json:"status"`
	History     []PlacedMove `json:"history"`
	WinningLine []Move       `json:"winningLine,omitempty"`

	engine *Bot
}

// NewGame creates a size×size game and plays the engine's opening stone on
// the center cell. The human moves next.
func NewGame(size int, engine *Bot) *Game {
	if engine == nil {
		engine = NewBot()
	}
	g := &Game{
		Board:  NewBoard(size),
		ToMove: Engine,
		Status: StatusPlaying,
		engine: engine,
	}
	g.commit(g.Board.Center(), Engine)
	return g
}

func (g *Game) Over() bool {
	return g.Status != StatusPlaying
}

// Winner returns the side that completed five in a row, or None.
func (g *Game) Winner() Side {
	switch g.Status {
	case StatusHumanWon:
		return Human
	case StatusEngineWon:
		return Engine
	default:
		return None
	}
}

func (g *Game) CheckWin(side Side) bool {
	return HasWin(g.Board, side)
}

// LastMove returns the most recent stone, if any.
func (g *Game) LastMove() (PlacedMove, bool) {
	if len(g.History) == 0 {
		return PlacedMove{}, false
	}
	return g.History[len(g.History)-1], true
}

// ApplyHumanMove places the human's stone. On error the game is unchanged.
func (g *Game) ApplyHumanMove(row, col int) error {
	if g.Over() {
		return ErrGameOver
	}
	if g.ToMove != Human {
		return ErrNotYourTurn
	}
	if !g.Board.IsValidMove(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidMove, row, col)
	}
	g.commit(Move{Row: row, Col: col}, Human)
	return nil
}

// ComputeEngineMove picks the engine's reply without touching the game. When
// the selector has no candidate it falls back to the center cell.
func (g *Game) ComputeEngineMove() Move {
	if m, ok := g.engine.SelectMove(&g.Board); ok {
		return m
	}
	return g.Board.Center()
}

// PlayEngineMove computes and commits the engine's reply.
func (g *Game) PlayEngineMove() (Move, error) {
	if g.Over() {
		return Move{}, ErrGameOver
	}
	if g.ToMove != Engine {
		return Move{}, ErrNotYourTurn
	}
	m := g.ComputeEngineMove()
	if !g.Board.IsValidMove(m.Row, m.Col) {
		return Move{}, fmt.Errorf("%w: engine chose (%d,%d)", ErrInvalidMove, m.Row, m.Col)
	}
	g.commit(m, Engine)
	return m, nil
}

func (g *Game) commit(m Move, side Side) {
	g.Board.Place(m.Row, m.Col, side)
	g.History = append(g.History, PlacedMove{Move: m, Side: side})

	if line := WinningLine(g.Board, side); line != nil {
		g.WinningLine = line
		if side == Human {
			g.Status = StatusHumanWon
		} else {
			g.Status = StatusEngineWon
		}
		return
	}
	if g.Board.IsFull() {
		g.Status = StatusDraw
		return
	}
	g.ToMove = side.Opponent()
}

// Snapshot returns a deep copy safe to hand to encoders.
func (g *Game) Snapshot() Game {
	return Game{
		Board:       g.Board.Clone(),
		ToMove:      g.ToMove,
		Status:      g.Status,
		History:     append([]PlacedMove(nil), g.History...),
		WinningLine: append([]Move(nil), g.WinningLine...),
		engine:      g.engine,
	}
}
