package game

// runLength counts same-side cells starting at (row, col) and walking forward
// along (dr, dc), stopping at WinLength.
func runLength(b Board, row, col, dr, dc int, side Side) int {
	count := 0
	for i := 0; i < WinLength; i++ {
		r, c := row+dr*i, col+dc*i
		if !in(r, c, b.Size) || b.Cells[r][c] != side {
			break
		}
		count++
	}
	return count
}

// HasWin reports whether side owns WinLength consecutive cells in any
// direction. Each run is found from its first cell only.
func HasWin(b Board, side Side) bool {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] != side {
				continue
			}
			for _, d := range directions {
				if runLength(b, row, col, d[0], d[1], side) == WinLength {
					return true
				}
			}
		}
	}
	return false
}

// WinningLine returns the cells of the first winning run for side, or nil.
func WinningLine(b Board, side Side) []Move {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] != side {
				continue
			}
			for _, d := range directions {
				if runLength(b, row, col, d[0], d[1], side) < WinLength {
					continue
				}
				line := make([]Move, WinLength)
				for i := range line {
					line[i] = Move{Row: row + d[0]*i, Col: col + d[1]*i}
				}
				return line
			}
		}
	}
	return nil
}

// WouldWin tries side at (row, col) and reports whether that wins. The board
// is left as it was.
func WouldWin(b *Board, row, col int, side Side) bool {
	won := false
	b.withPlacement(Move{Row: row, Col: col}, side, func() {
		won = HasWin(*b, side)
	})
	return won
}
