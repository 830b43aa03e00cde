package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-plus/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
)

type cell [2]int

// winLines is scanned in order and the first completed line wins: row i then column i for
// each i, then the main diagonal, then the anti-diagonal.
var winLines = [8][3]cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Select - makes the piece of side with rank the one to be placed next.
func Select(game *entity.Game, side entity.Side, rank int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !side.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSide, side)
	}

	if !entity.IsValidRank(rank) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidRank, rank)
	}

	if side != game.Turn {
		return apperror.ErrNotYourTurn
	}

	ref := entity.PieceRef{Side: side, Rank: rank}
	if game.Piece(ref).Used {
		return apperror.ErrPieceUsed
	}

	game.Selected = &ref

	return nil
}

// CanPlace - reports whether the selected piece may go to (row, col).
func CanPlace(game *entity.Game, row, col int) bool {
	return validatePlacement(game, row, col) == nil
}

// AttemptPlace - places the selected piece if legal and re-evaluates the outcome.
func AttemptPlace(game *entity.Game, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validatePlacement(game, row, col); err != nil {
		return fmt.Errorf("invalid placement: %w", err)
	}

	place(game, row, col)
	game.Outcome = Evaluate(game)

	return nil
}

// Restart - returns a fresh game that keeps the ID of the old one.
func Restart(game *entity.Game) *entity.Game {
	return entity.NewGame(game.ID)
}

// validatePlacement - checks the selected piece against the target cell.
func validatePlacement(game *entity.Game, row, col int) error {
	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if game.Selected == nil {
		return apperror.ErrNothingSelected
	}

	occupant := game.Board[row][col]
	if occupant == nil {
		return nil
	}

	if occupant.Side != game.Selected.Side && occupant.Rank < game.Selected.Rank {
		return nil
	}

	return apperror.ErrCellOccupied
}

// place - covers whatever sits on the cell; a covered piece stays used.
func place(game *entity.Game, row, col int) {
	ref := *game.Selected

	game.Board[row][col] = &ref
	game.Piece(ref).Used = true
	game.Selected = nil
	game.Turn = game.Turn.Opponent()
}

// Evaluate - classifies the game. It has no side effects.
func Evaluate(game *entity.Game) entity.Outcome {
	if winner, ok := threeInARow(&game.Board); ok {
		return entity.Win(winner)
	}

	if !game.HasPiecesLeft(game.Turn) {
		return entity.Tie()
	}

	if !game.Board.IsFull() {
		return entity.InProgress()
	}

	// full board: the side to move needs an opposing piece it can cover
	largest := game.LargestUnusedRank(game.Turn)
	for _, row := range game.Board {
		for _, occupant := range row {
			if occupant.Side != game.Turn && occupant.Rank < largest {
				return entity.InProgress()
			}
		}
	}

	return entity.Tie()
}

func threeInARow(board *entity.Board) (entity.Side, bool) {
	for _, line := range winLines {
		first := board[line[0][0]][line[0][1]]
		if first == nil {
			continue
		}

		complete := true
		for _, c := range line[1:] {
			occupant := board[c[0]][c[1]]
			if occupant == nil || occupant.Side != first.Side {
				complete = false
				break
			}
		}

		if complete {
			return first.Side, true
		}
	}

	return "", false
}
