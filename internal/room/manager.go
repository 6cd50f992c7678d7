package room

import (
	"fmt"
	"time"

	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Manager struct {
	store  Store
	cfg    config.Engine
	engine *game.Bot
	hub    Broadcaster
	logger zerolog.Logger

	newCode func() string
}

func NewManager(s Store, cfg config.Engine, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	logger := log.With().Str("component", "room").Logger()
	return &Manager{
		store: s,
		cfg:   cfg,
		engine: game.NewBot(
			game.WithDepth(cfg.SearchDepth),
			game.WithRadius(cfg.CandidateRadius),
			game.WithLogger(logger),
		),
		hub:     hub,
		logger:  logger,
		newCode: func() string { return randCode(6) },
	}
}

// SetHub wires the broadcaster once it exists; the hub itself needs the
// manager, so one side has to be set late.
func (m *Manager) SetHub(hub Broadcaster) {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	m.hub = hub
}

func (m *Manager) Config() config.Engine {
	return m.cfg
}

// CreateRoom starts a new game; the engine's opening stone is already on the
// board.
func (m *Manager) CreateRoom(playerName string) (*shared.Room, shared.RoomView) {
	now := time.Now()
	r := &shared.Room{
		PlayerID:   uuid.NewString(),
		PlayerName: playerName,
		Game:       game.NewGame(m.cfg.BoardSize, m.engine),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for {
		r.Code = m.newCode()
		if m.store.SaveIfAbsent(r) {
			break
		}
	}

	m.logger.Info().Str("room", r.Code).Str("player", playerName).Int("size", m.cfg.BoardSize).Msg("room-created")
	r.Lock()
	defer r.Unlock()
	return r, r.View()
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) View(code string) (shared.RoomView, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.RoomView{}, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()
	return r.View(), nil
}

// PossibleMoves lists the cells the engine would consider next.
func (m *Manager) PossibleMoves(code string) ([]game.Move, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()
	moves := game.GenerateMoves(r.Game.Board, m.cfg.CandidateRadius)
	if moves == nil {
		moves = []game.Move{}
	}
	return moves, nil
}

// ApplyMove plays the human stone and, unless that ends the game, the engine
// reply. The room stays locked for both so nobody sees the search mid-way.
func (m *Manager) ApplyMove(code, playerID string, row, col int) (shared.MoveResult, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.MoveResult{}, ErrRoomNotFound
	}

	res, events, err := m.applyMove(r, playerID, row, col)
	if err != nil {
		m.logger.Debug().Err(err).Str("room", code).Int("row", row).Int("col", col).Msg("move-rejected")
		return res, err
	}
	for _, ev := range events {
		m.hub.Broadcast(code, ev.action, ev.data)
	}
	return res, nil
}

func (m *Manager) applyMove(r *shared.Room, playerID string, row, col int) (shared.MoveResult, []event, error) {
	r.Lock()
	defer r.Unlock()

	if r.PlayerID != playerID {
		return shared.MoveResult{}, nil, ErrPlayerMismatch
	}
	if err := r.Game.ApplyHumanMove(row, col); err != nil {
		return shared.MoveResult{}, nil, fmt.Errorf("room %s: %w", r.Code, err)
	}

	res := shared.MoveResult{HumanMove: game.Move{Row: row, Col: col}}
	events := []event{{action: "move", data: gin.H{"side": game.Human.String(), "row": row, "col": col}}}

	if !r.Game.Over() {
		start := time.Now()
		mv, err := r.Game.PlayEngineMove()
		if err != nil {
			return shared.MoveResult{}, nil, fmt.Errorf("room %s: engine: %w", r.Code, err)
		}
		res.EngineMove = &mv
		events = append(events, event{action: "engine_move", data: gin.H{"side": game.Engine.String(), "row": mv.Row, "col": mv.Col}})
		m.logger.Info().
			Str("room", r.Code).
			Int("row", mv.Row).
			Int("col", mv.Col).
			Dur("elapsed", time.Since(start)).
			Msg("engine-moved")
	}

	r.UpdatedAt = time.Now()
	res.Room = r.View()
	events = append(events, event{action: "state", data: gin.H{"room": res.Room}})

	if r.Game.Over() {
		events = append(events, event{action: "game_over", data: gin.H{
			"status":      res.Room.Status,
			"winner":      res.Room.Winner,
			"winningLine": res.Room.WinningLine,
		}})
		m.logger.Info().Str("room", r.Code).Str("status", string(res.Room.Status)).Msg("game-over")
	}
	return res, events, nil
}

// Reset replaces the room's game with a fresh one.
func (m *Manager) Reset(code, playerID string) (shared.RoomView, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.RoomView{}, ErrRoomNotFound
	}

	r.Lock()
	if r.PlayerID != playerID {
		r.Unlock()
		return shared.RoomView{}, ErrPlayerMismatch
	}
	r.Game = game.NewGame(m.cfg.BoardSize, m.engine)
	r.UpdatedAt = time.Now()
	view := r.View()
	r.Unlock()

	m.hub.Broadcast(code, "reset", gin.H{"room": view})
	m.logger.Info().Str("room", code).Msg("room-reset")
	return view, nil
}

func (m *Manager) Delete(code string) {
	m.store.DeleteRoom(code)
}
