package game

// GenerateMoves returns every empty cell within Chebyshev distance radius of
// an occupied cell, in row-major order. An empty board yields no moves.
func GenerateMoves(b Board, radius int) []Move {
	if radius < 0 {
		radius = 0
	}

	near := make([]bool, b.Size*b.Size)
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == None {
				continue
			}
			for dr := -radius; dr <= radius; dr++ {
				for dc := -radius; dc <= radius; dc++ {
					r, c := row+dr, col+dc
					if b.IsValidMove(r, c) {
						near[r*b.Size+c] = true
					}
				}
			}
		}
	}

	var moves []Move
	for i, ok := range near {
		if ok {
			moves = append(moves, Move{Row: i / b.Size, Col: i % b.Size})
		}
	}
	return moves
}
