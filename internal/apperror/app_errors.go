package apperror

import "errors"

// Rejections. The game state is left untouched whenever one of these is returned.
var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrPieceUsed       = errors.New("piece is already used")
	ErrNothingSelected = errors.New("no piece selected")
	ErrCellOccupied    = errors.New("cell is occupied by own or larger piece")
	ErrInvalidCell     = errors.New("invalid cell")
	ErrInvalidRank     = errors.New("invalid piece rank")
	ErrInvalidSide     = errors.New("invalid side")
	ErrGameNotFound    = errors.New("game not found")
)

// IsRejection reports whether err is a rule rejection rather than an infrastructure failure.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrGameFinished,
		ErrNotYourTurn,
		ErrPieceUsed,
		ErrNothingSelected,
		ErrCellOccupied,
		ErrInvalidCell,
		ErrInvalidRank,
		ErrInvalidSide,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
