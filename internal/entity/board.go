package entity

// Board holds references into the game inventories. A nil cell is empty.
type Board [BoardSize][BoardSize]*PieceRef

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Cell - returns the occupant of a cell, nil when the cell is empty or out of bounds.
func (that *Board) Cell(row, col int) *PieceRef {
	if !InBounds(row, col) {
		return nil
	}
	return that[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == nil {
				return false
			}
		}
	}
	return true
}

// Occupied - counts non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != nil {
				count++
			}
		}
	}
	return count
}

// Contains reports whether ref currently sits on the board.
func (that *Board) Contains(ref PieceRef) bool {
	for _, row := range that {
		for _, cell := range row {
			if cell != nil && *cell == ref {
				return true
			}
		}
	}
	return false
}
