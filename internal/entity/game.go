package entity

import "fmt"

type Game struct {
	ID       string           `json:"id"`
	Board    Board            `json:"board"`
	Pieces   map[Side][]Piece `json:"pieces"`
	Turn     Side             `json:"turn"`
	Selected *PieceRef        `json:"selected,omitempty"`
	Outcome  Outcome          `json:"outcome"`
}

// NewGame - creates a fresh game: empty board, all pieces unused, blue to move with its
// smallest piece already selected.
func NewGame(id string) *Game {
	pieces := make(map[Side][]Piece, len(Sides))
	for _, side := range Sides {
		inventory := make([]Piece, PieceCount)
		for rank := range inventory {
			inventory[rank] = Piece{Rank: rank, Side: side}
		}
		pieces[side] = inventory
	}

	return &Game{
		ID:       id,
		Pieces:   pieces,
		Turn:     SideBlue,
		Selected: &PieceRef{Side: SideBlue, Rank: 0},
		Outcome:  InProgress(),
	}
}

// Piece - returns the inventory entry for ref, nil if ref names no piece.
func (that *Game) Piece(ref PieceRef) *Piece {
	inventory, ok := that.Pieces[ref.Side]
	if !ok || ref.Rank < 0 || ref.Rank >= len(inventory) {
		return nil
	}
	return &inventory[ref.Rank]
}

// Cell - returns a copy of the piece on (row, col); false when the cell is empty.
func (that *Game) Cell(row, col int) (PieceRef, bool) {
	ref := that.Board.Cell(row, col)
	if ref == nil {
		return PieceRef{}, false
	}
	return *ref, true
}

// RemainingPieces - returns the unused pieces of side in rank order.
func (that *Game) RemainingPieces(side Side) []Piece {
	remaining := make([]Piece, 0, PieceCount)
	for _, piece := range that.Pieces[side] {
		if !piece.Used {
			remaining = append(remaining, piece)
		}
	}
	return remaining
}

func (that *Game) HasPiecesLeft(side Side) bool {
	return len(that.RemainingPieces(side)) > 0
}

// LargestUnusedRank - returns -1 when side has nothing left.
func (that *Game) LargestUnusedRank(side Side) int {
	largest := -1
	for _, piece := range that.Pieces[side] {
		if !piece.Used && piece.Rank > largest {
			largest = piece.Rank
		}
	}
	return largest
}

// CoveredPieces - returns pieces that were placed and later covered, so are out of play.
func (that *Game) CoveredPieces() []Piece {
	var covered []Piece
	for _, side := range Sides {
		for _, piece := range that.Pieces[side] {
			if piece.Used && !that.Board.Contains(piece.Ref()) {
				covered = append(covered, piece)
			}
		}
	}
	return covered
}

// UsedCount - counts used pieces of both sides.
func (that *Game) UsedCount() int {
	count := 0
	for _, side := range Sides {
		for _, piece := range that.Pieces[side] {
			if piece.Used {
				count++
			}
		}
	}
	return count
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsFinished()
}

// StatusText - returns the line a client shows under the board.
func (that *Game) StatusText() string {
	if that.IsFinished() {
		return that.Outcome.String()
	}
	return fmt.Sprintf("Turn: %s", that.Turn)
}
