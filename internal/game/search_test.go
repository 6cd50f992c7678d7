package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietBot(opts ...Option) *Bot {
	return NewBot(append([]Option{WithLogger(zerolog.Nop())}, opts...)...)
}

// minimax is the same search without pruning.
func minimax(b *Board, depth, radius int, maximizing bool) (*Move, int) {
	if depth == 0 || HasWin(*b, Human) || HasWin(*b, Engine) {
		return nil, Evaluate(*b, Engine)
	}
	moves := GenerateMoves(*b, radius)
	if len(moves) == 0 {
		return nil, Evaluate(*b, Engine)
	}

	var best *Move
	side, bestScore := Engine, MinScore
	if !maximizing {
		side, bestScore = Human, MaxScore
	}
	for i := range moves {
		b.Place(moves[i].Row, moves[i].Col, side)
		_, score := minimax(b, depth-1, radius, !maximizing)
		b.Clear(moves[i].Row, moves[i].Col)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			best = &moves[i]
		}
	}
	return best, bestScore
}

func boardFrom(size int, stones map[Move]Side) Board {
	b := NewBoard(size)
	for m, s := range stones {
		b.Place(m.Row, m.Col, s)
	}
	return b
}

func searchPositions() map[string]Board {
	return map[string]Board{
		"opening reply": boardFrom(10, map[Move]Side{
			{Row: 5, Col: 5}: Engine,
			{Row: 5, Col: 6}: Human,
		}),
		"midgame": boardFrom(10, map[Move]Side{
			{Row: 5, Col: 5}: Engine,
			{Row: 5, Col: 6}: Human,
			{Row: 4, Col: 4}: Engine,
			{Row: 6, Col: 6}: Human,
			{Row: 4, Col: 6}: Engine,
			{Row: 3, Col: 7}: Human,
		}),
		"edge": boardFrom(10, map[Move]Side{
			{Row: 0, Col: 0}: Engine,
			{Row: 0, Col: 1}: Human,
			{Row: 1, Col: 1}: Human,
		}),
	}
}

func TestSearchTerminalAtDepthZero(t *testing.T) {
	b := boardFrom(10, map[Move]Side{{Row: 5, Col: 5}: Engine})
	best, score := quietBot().Search(&b, 0, MinScore, MaxScore, true)
	assert.Nil(t, best)
	assert.Equal(t, Evaluate(b, Engine), score)
}

func TestSearchTerminalOnWin(t *testing.T) {
	b := NewBoard(10)
	placeLine(&b, Move{Row: 1, Col: 1}, 0, 1, 5, Human)
	best, score := quietBot().Search(&b, 3, MinScore, MaxScore, true)
	assert.Nil(t, best)
	assert.Equal(t, Evaluate(b, Engine), score)
}

func TestSearchEmptyBoard(t *testing.T) {
	b := NewBoard(10)
	best, score := quietBot().Search(&b, 2, MinScore, MaxScore, true)
	assert.Nil(t, best)
	assert.Equal(t, 0, score)
}

func TestSearchRestoresBoard(t *testing.T) {
	for name, b := range searchPositions() {
		t.Run(name, func(t *testing.T) {
			before := b.Clone()
			best, _ := quietBot().Search(&b, 2, MinScore, MaxScore, true)
			require.NotNil(t, best)
			assert.Equal(t, before, b)
			assert.True(t, b.IsValidMove(best.Row, best.Col))
		})
	}
}

func TestSearchMatchesUnprunedMinimax(t *testing.T) {
	e := quietBot()
	for name, b := range searchPositions() {
		t.Run(name, func(t *testing.T) {
			want, wantScore := minimax(&b, 2, e.Radius, true)
			got, gotScore := e.Search(&b, 2, MinScore, MaxScore, true)
			require.NotNil(t, want)
			require.NotNil(t, got)
			assert.Equal(t, *want, *got)
			assert.Equal(t, wantScore, gotScore)
		})
	}
}

func TestSearchMatchesUnprunedMinimaxDepthThree(t *testing.T) {
	e := quietBot(WithRadius(1))
	b := boardFrom(7, map[Move]Side{
		{Row: 3, Col: 3}: Engine,
		{Row: 3, Col: 4}: Human,
		{Row: 2, Col: 2}: Engine,
	})

	want, wantScore := minimax(&b, 3, e.Radius, true)
	got, gotScore := e.Search(&b, 3, MinScore, MaxScore, true)
	require.NotNil(t, want)
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)
	assert.Equal(t, wantScore, gotScore)

	want, wantScore = minimax(&b, 3, e.Radius, false)
	got, gotScore = e.Search(&b, 3, MinScore, MaxScore, false)
	require.NotNil(t, want)
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)
	assert.Equal(t, wantScore, gotScore)
}

func TestSearchScoreBoundsChildren(t *testing.T) {
	e := quietBot()
	b := searchPositions()["midgame"]

	_, root := e.Search(&b, 2, MinScore, MaxScore, true)
	for _, m := range GenerateMoves(b, e.Radius) {
		b.withPlacement(m, Engine, func() {
			_, child := e.Search(&b, 1, MinScore, MaxScore, false)
			assert.GreaterOrEqual(t, root, child, "move %v", m)
		})
	}
}

func TestSearchPrefersEarliestOnTies(t *testing.T) {
	// With one stone every depth-1 reply on the same ring scores alike; the
	// first candidate in row-major order among the best must be returned.
	b := boardFrom(10, map[Move]Side{{Row: 5, Col: 5}: Engine})
	e := quietBot()

	best, score := e.Search(&b, 1, MinScore, MaxScore, true)
	require.NotNil(t, best)

	for _, m := range GenerateMoves(b, e.Radius) {
		var s int
		b.withPlacement(m, Engine, func() { s = Evaluate(b, Engine) })
		if s == score {
			assert.Equal(t, m, *best)
			return
		}
		assert.Less(t, s, score)
	}
	t.Fatal("best score not found among candidates")
}

func TestSearchCountsWork(t *testing.T) {
	b := searchPositions()["midgame"]
	s := &searcher{radius: DefaultRadius}

	best, _ := s.search(&b, 2, MinScore, MaxScore, true)
	require.NotNil(t, best)
	assert.Positive(t, s.stats.nodes)
	assert.Positive(t, s.stats.leaves)
	assert.Less(t, s.stats.leaves, s.stats.nodes)
}
