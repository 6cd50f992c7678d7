package game

import "math"

const (
	DefaultBoardSize = 10
	WinLength        = 5
	DefaultRadius    = 2
	DefaultDepth     = 2
)

// Score bounds used as -inf/+inf by the search.
const (
	MinScore = math.MinInt
	MaxScore = math.MaxInt
)

// Side tags both cell ownership and whose turn it is. None marks an empty cell.
type Side int8

const (
	None Side = iota
	Human
	Engine
)

func (s Side) Opponent() Side {
	switch s {
	case Human:
		return Engine
	case Engine:
		return Human
	default:
		return None
	}
}

func (s Side) String() string {
	switch s {
	case Human:
		return "human"
	case Engine:
		return "engine"
	default:
		return "none"
	}
}

type Board struct {
	Size  int      `json:"size"`
	Cells [][]Side `json:"cells"` // Cells[row][col]
}

func NewBoard(size int) Board {
	if size <= 0 {
		size = DefaultBoardSize
	}

	c := make([][]Side, size)
	for i := range c {
		c[i] = make([]Side, size)
	}

	return Board{
		Size:  size,
		Cells: c,
	}
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type PlacedMove struct {
	Move
	Side Side `json:"side"`
}

type Status string

const (
	StatusPlaying   Status = "playing"
	StatusHumanWon  Status = "human_won"
	StatusEngineWon Status = "engine_won"
	StatusDraw      Status = "draw"
)

// directions are (dRow, dCol): horizontal, vertical and both diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
