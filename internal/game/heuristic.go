package game

// Evaluate scores the board for side: every forward run adds its length
// squared when side owns it and subtracts it when the opponent does.
func Evaluate(b Board, side Side) int {
	if side == None {
		return 0
	}
	opponent := side.Opponent()
	score := 0

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			owner := b.Cells[row][col]
			if owner != side && owner != opponent {
				continue
			}
			for _, d := range directions {
				n := runLength(b, row, col, d[0], d[1], owner)
				if owner == side {
					score += n * n
				} else {
					score -= n * n
				}
			}
		}
	}

	return score
}
