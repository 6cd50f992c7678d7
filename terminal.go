package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gomoku/internal/game"

	"github.com/logrusorgru/aurora"
)

var errMoveFormat = fmt.Errorf("%w: expected \"row col\"", game.ErrInvalidMove)

// parseMove reads a 1-based "row col" pair and returns the zero-based move.
func parseMove(line string, size int) (game.Move, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return game.Move{}, errMoveFormat
	}
	r, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Move{}, errMoveFormat
	}
	c, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Move{}, errMoveFormat
	}
	if r < 1 || r > size || c < 1 || c > size {
		return game.Move{}, fmt.Errorf("%w: (%d,%d) is off the board", game.ErrInvalidMove, r, c)
	}
	return game.Move{Row: r - 1, Col: c - 1}, nil
}

func formatMove(m game.Move) string {
	return fmt.Sprintf("%d %d", m.Row+1, m.Col+1)
}

// renderBoard prints the grid with 1-based coordinates. The last stone and
// any winning line are highlighted.
func renderBoard(w io.Writer, g *game.Game, au aurora.Aurora) {
	highlight := make(map[game.Move]bool, len(g.WinningLine)+1)
	for _, m := range g.WinningLine {
		highlight[m] = true
	}
	if last, ok := g.LastMove(); ok {
		highlight[last.Move] = true
	}

	fmt.Fprint(w, "   ")
	for c := 0; c < g.Board.Size; c++ {
		fmt.Fprintf(w, "%3d", c+1)
	}
	fmt.Fprintln(w)

	for r := 0; r < g.Board.Size; r++ {
		fmt.Fprintf(w, "%3d", r+1)
		for c := 0; c < g.Board.Size; c++ {
			fmt.Fprint(w, "  ", cellGlyph(g.Board.At(r, c), highlight[game.Move{Row: r, Col: c}], au))
		}
		fmt.Fprintln(w)
	}
}

func cellGlyph(s game.Side, hot bool, au aurora.Aurora) aurora.Value {
	var v aurora.Value
	switch s {
	case game.Human:
		v = au.Green("X")
	case game.Engine:
		v = au.Red("O")
	default:
		return au.Gray(12, ".")
	}
	if hot {
		v = v.Bold()
	}
	return v
}
