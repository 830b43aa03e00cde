package view

import (
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
	"github.com/rocketscienceinc/tictactoe-plus/internal/tictactoe"
)

// Game is the read-only snapshot sent to clients after every action.
type Game struct {
	ID        string                                               `json:"id"`
	Board     [entity.BoardSize][entity.BoardSize]*entity.PieceRef `json:"board"`
	Playable  [entity.BoardSize][entity.BoardSize]bool             `json:"playable"`
	Remaining map[entity.Side][]int                                `json:"remaining"`
	Covered   []entity.PieceRef                                    `json:"covered"`
	Turn      entity.Side                                          `json:"turn"`
	Selected  *entity.PieceRef                                     `json:"selected"`
	Outcome   entity.Outcome                                       `json:"outcome"`
	Message   string                                               `json:"message"`
}

// FromGame - builds the snapshot; Playable marks the cells the selected piece may go to.
func FromGame(game *entity.Game) *Game {
	snapshot := &Game{
		ID:        game.ID,
		Remaining: make(map[entity.Side][]int, len(entity.Sides)),
		Covered:   make([]entity.PieceRef, 0),
		Turn:      game.Turn,
		Outcome:   game.Outcome,
		Message:   game.StatusText(),
	}

	for row := range game.Board {
		for col := range game.Board[row] {
			if occupant, ok := game.Cell(row, col); ok {
				snapshot.Board[row][col] = &occupant
			}
			snapshot.Playable[row][col] = !game.IsFinished() && tictactoe.CanPlace(game, row, col)
		}
	}

	for _, side := range entity.Sides {
		ranks := make([]int, 0, entity.PieceCount)
		for _, piece := range game.RemainingPieces(side) {
			ranks = append(ranks, piece.Rank)
		}
		snapshot.Remaining[side] = ranks
	}

	for _, piece := range game.CoveredPieces() {
		snapshot.Covered = append(snapshot.Covered, piece.Ref())
	}

	if game.Selected != nil {
		selected := *game.Selected
		snapshot.Selected = &selected
	}

	return snapshot
}
