package game

func in(row, col, size int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

func (b Board) InBounds(row, col int) bool {
	return in(row, col, b.Size)
}

func (b Board) At(row, col int) Side {
	return b.Cells[row][col]
}

// IsValidMove reports whether (row, col) is on the board and empty.
func (b Board) IsValidMove(row, col int) bool {
	return b.InBounds(row, col) && b.Cells[row][col] == None
}

// Place writes side into the cell without validation. Callers check
// IsValidMove first.
func (b *Board) Place(row, col int, side Side) {
	b.Cells[row][col] = side
}

// Clear resets a cell to empty.
func (b *Board) Clear(row, col int) {
	b.Cells[row][col] = None
}

// withPlacement puts side on m for the duration of fn. The cell is cleared
// afterwards no matter how fn exits.
func (b *Board) withPlacement(m Move, side Side, fn func()) {
	b.Place(m.Row, m.Col, side)
	defer b.Clear(m.Row, m.Col)
	fn()
}

func (b Board) Center() Move {
	return Move{Row: b.Size / 2, Col: b.Size / 2}
}

func (b Board) Count(side Side) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c == side {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether no stone has been placed yet.
func (b Board) IsEmpty() bool {
	return b.Count(None) == b.Size*b.Size
}

func (b Board) IsFull() bool {
	return b.Count(None) == 0
}

func (b Board) Clone() Board {
	c := make([][]Side, b.Size)
	for i := range b.Cells {
		c[i] = append([]Side(nil), b.Cells[i]...)
	}
	return Board{Size: b.Size, Cells: c}
}
