package entity

const (
	// PieceCount is the number of pieces each side owns, one per rank.
	PieceCount = 6
	// BoardSize is the length of a board row and column.
	BoardSize = 3
)

type Side string

const (
	SideBlue Side = "blue"
	SideRed  Side = "red"
)

// Sides lists both sides in turn order.
var Sides = [2]Side{SideBlue, SideRed}

func (that Side) IsValid() bool {
	return that == SideBlue || that == SideRed
}

// Opponent - returns the other side.
func (that Side) Opponent() Side {
	if that == SideBlue {
		return SideRed
	}
	return SideBlue
}

// Piece is one physical piece. Used flips to true once, when the piece is placed.
type Piece struct {
	Rank int  `json:"rank"`
	Side Side `json:"side"`
	Used bool `json:"used"`
}

// Ref - returns the reference a board cell stores for this piece.
func (that Piece) Ref() PieceRef {
	return PieceRef{Side: that.Side, Rank: that.Rank}
}

// PieceRef identifies a piece in its side's inventory.
type PieceRef struct {
	Side Side `json:"side"`
	Rank int  `json:"rank"`
}

func IsValidRank(rank int) bool {
	return rank >= 0 && rank < PieceCount
}
