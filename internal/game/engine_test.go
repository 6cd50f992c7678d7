package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBotOptions(t *testing.T) {
	e := NewBot()
	assert.Equal(t, DefaultDepth, e.Depth)
	assert.Equal(t, DefaultRadius, e.Radius)

	e = quietBot(WithDepth(3), WithRadius(1))
	assert.Equal(t, 3, e.Depth)
	assert.Equal(t, 1, e.Radius)

	e = quietBot(WithDepth(0), WithRadius(-1))
	assert.Equal(t, DefaultDepth, e.Depth)
	assert.Equal(t, DefaultRadius, e.Radius)
}

func TestSelectMoveTakesWin(t *testing.T) {
	b := boardFrom(10, map[Move]Side{
		{Row: 5, Col: 3}: Engine,
		{Row: 5, Col: 4}: Engine,
		{Row: 5, Col: 5}: Engine,
		{Row: 5, Col: 6}: Engine,
		{Row: 4, Col: 4}: Human,
		{Row: 6, Col: 6}: Human,
		{Row: 4, Col: 6}: Human,
	})
	before := b.Clone()

	m, ok := quietBot().SelectMove(&b)
	require.True(t, ok)
	assert.Equal(t, before, b)
	assert.Equal(t, Move{Row: 5, Col: 2}, m, "first winning cell in row-major order")

	b.Place(m.Row, m.Col, Engine)
	assert.True(t, HasWin(b, Engine))
}

func TestSelectMoveBlocksFour(t *testing.T) {
	b := boardFrom(10, map[Move]Side{
		{Row: 2, Col: 0}: Engine,
		{Row: 2, Col: 1}: Human,
		{Row: 2, Col: 2}: Human,
		{Row: 2, Col: 3}: Human,
		{Row: 2, Col: 4}: Human,
		{Row: 5, Col: 5}: Engine,
		{Row: 7, Col: 7}: Engine,
	})

	m, ok := quietBot().SelectMove(&b)
	require.True(t, ok)
	assert.Equal(t, Move{Row: 2, Col: 5}, m)
}

func TestSelectMovePrefersWinOverBlock(t *testing.T) {
	b := boardFrom(10, map[Move]Side{
		{Row: 0, Col: 1}: Human,
		{Row: 0, Col: 2}: Human,
		{Row: 0, Col: 3}: Human,
		{Row: 0, Col: 4}: Human,
		{Row: 8, Col: 2}: Engine,
		{Row: 8, Col: 3}: Engine,
		{Row: 8, Col: 4}: Engine,
		{Row: 8, Col: 5}: Engine,
	})

	m, ok := quietBot().SelectMove(&b)
	require.True(t, ok)
	b.Place(m.Row, m.Col, Engine)
	assert.True(t, HasWin(b, Engine))
}

func TestSelectMoveFallsBackToSearch(t *testing.T) {
	b := boardFrom(10, map[Move]Side{
		{Row: 5, Col: 5}: Engine,
		{Row: 5, Col: 6}: Human,
	})
	before := b.Clone()
	e := quietBot()

	m, ok := e.SelectMove(&b)
	require.True(t, ok)
	assert.Equal(t, before, b)
	assert.True(t, b.IsValidMove(m.Row, m.Col))

	best, _ := e.Search(&b, e.Depth, MinScore, MaxScore, true)
	require.NotNil(t, best)
	assert.Equal(t, *best, m)
}

func TestSelectMoveEmptyBoard(t *testing.T) {
	b := NewBoard(10)
	_, ok := quietBot().SelectMove(&b)
	assert.False(t, ok)
}
