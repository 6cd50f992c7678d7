package game

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Bot picks moves for the Engine side.
type Bot struct {
	Depth  int
	Radius int
	logger zerolog.Logger
}

type Option func(*Bot)

func WithDepth(depth int) Option {
	return func(e *Bot) {
		if depth > 0 {
			e.Depth = depth
		}
	}
}

func WithRadius(radius int) Option {
	return func(e *Bot) {
		if radius > 0 {
			e.Radius = radius
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Bot) {
		e.logger = logger
	}
}

func NewBot(opts ...Option) *Bot {
	e := &Bot{
		Depth:  DefaultDepth,
		Radius: DefaultRadius,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs alpha-beta minimax from b and returns the best move (nil at a
// terminal position) with its score. b is restored before returning.
func (e *Bot) Search(b *Board, depth, alpha, beta int, maximizing bool) (*Move, int) {
	s := &searcher{radius: e.Radius}
	start := time.Now()
	best, score := s.search(b, depth, alpha, beta, maximizing)
	s.stats.elapsed = time.Since(start)

	ev := e.logger.Debug().
		Int("depth", depth).
		Int("nodes", s.stats.nodes).
		Int("leaves", s.stats.leaves).
		Int("cutoffs", s.stats.cutoffs).
		Int("score", score).
		Dur("elapsed", s.stats.elapsed)
	if best != nil {
		ev = ev.Int("row", best.Row).Int("col", best.Col)
	}
	ev.Msg("search-complete")

	return best, score
}

// SelectMove returns an immediate win if there is one, otherwise a block of
// the human's immediate win, otherwise the search result. ok is false when
// there is no candidate at all.
func (e *Bot) SelectMove(b *Board) (Move, bool) {
	moves := GenerateMoves(*b, e.Radius)

	for _, m := range moves {
		if WouldWin(b, m.Row, m.Col, Engine) {
			e.logger.Debug().Int("row", m.Row).Int("col", m.Col).Msg("winning-move")
			return m, true
		}
	}

	for _, m := range moves {
		if WouldWin(b, m.Row, m.Col, Human) {
			e.logger.Debug().Int("row", m.Row).Int("col", m.Col).Msg("blocking-move")
			return m, true
		}
	}

	best, _ := e.Search(b, e.Depth, MinScore, MaxScore, true)
	if best == nil {
		return Move{}, false
	}
	return *best, true
}
