package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-plus/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
)

func blue(rank int) *entity.PieceRef {
	return &entity.PieceRef{Side: entity.SideBlue, Rank: rank}
}

func red(rank int) *entity.PieceRef {
	return &entity.PieceRef{Side: entity.SideRed, Rank: rank}
}

// gameWithBoard builds a game around board and marks every piece on it as used.
func gameWithBoard(t *testing.T, board entity.Board, turn entity.Side) *entity.Game {
	t.Helper()

	game := entity.NewGame("123")
	game.Board = board
	game.Turn = turn
	game.Selected = nil

	for _, row := range board {
		for _, occupant := range row {
			if occupant != nil {
				game.Piece(*occupant).Used = true
			}
		}
	}

	return game
}

func TestSelect(t *testing.T) {
	t.Run("Selects an unused piece of the side to move", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: blue selects rank 4
		err := Select(game, entity.SideBlue, 4)

		// Then: rank 4 is selected
		require.NoError(t, err)
		assert.Equal(t, blue(4), game.Selected)
	})

	t.Run("Ignores the inactive side", func(t *testing.T) {
		// Given: a new game where blue has rank 0 selected
		game := entity.NewGame("123")

		// When: red tries to select
		err := Select(game, entity.SideRed, 3)

		// Then: the selection is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, blue(0), game.Selected)
	})

	t.Run("Ignores a used piece", func(t *testing.T) {
		// Given: blue rank 2 has already been placed
		game := entity.NewGame("123")
		game.Pieces[entity.SideBlue][2].Used = true

		// When: blue selects rank 2
		err := Select(game, entity.SideBlue, 2)

		// Then: the selection is unchanged
		require.ErrorIs(t, err, apperror.ErrPieceUsed)
		assert.Equal(t, blue(0), game.Selected)
	})

	t.Run("Rejects unknown sides and ranks", func(t *testing.T) {
		game := entity.NewGame("123")

		require.ErrorIs(t, Select(game, "green", 1), apperror.ErrInvalidSide)
		require.ErrorIs(t, Select(game, entity.SideBlue, 6), apperror.ErrInvalidRank)
		require.ErrorIs(t, Select(game, entity.SideBlue, -1), apperror.ErrInvalidRank)
		assert.Equal(t, blue(0), game.Selected)
	})

	t.Run("Ignores selection after the game is over", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame("123")
		game.Outcome = entity.Win(entity.SideRed)

		// When: blue selects
		err := Select(game, entity.SideBlue, 5)

		// Then: nothing changes
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, blue(0), game.Selected)
	})
}

func TestCanPlace(t *testing.T) {
	t.Run("Nothing selected", func(t *testing.T) {
		game := entity.NewGame("123")
		game.Selected = nil

		assert.False(t, CanPlace(game, 0, 0))
	})

	t.Run("Empty cell", func(t *testing.T) {
		game := entity.NewGame("123")

		assert.True(t, CanPlace(game, 1, 1))
	})

	t.Run("Out of bounds", func(t *testing.T) {
		game := entity.NewGame("123")

		assert.False(t, CanPlace(game, 3, 1))
		assert.False(t, CanPlace(game, 0, -1))
	})

	// covering works the same way for both sides
	for _, mover := range entity.Sides {
		other := mover.Opponent()

		t.Run(string(mover)+" covering "+string(other), func(t *testing.T) {
			// Given: an opposing rank 2 in the centre
			game := entity.NewGame("123")
			game.Turn = mover
			game.Board[1][1] = &entity.PieceRef{Side: other, Rank: 2}

			// Then: rank 2 cannot cover it, rank 3 can
			game.Selected = &entity.PieceRef{Side: mover, Rank: 2}
			assert.False(t, CanPlace(game, 1, 1))

			game.Selected = &entity.PieceRef{Side: mover, Rank: 3}
			assert.True(t, CanPlace(game, 1, 1))

			// Then: a larger opposing piece cannot be covered
			game.Board[1][1] = &entity.PieceRef{Side: other, Rank: 4}
			assert.False(t, CanPlace(game, 1, 1))

			// Then: own pieces are never covered
			game.Board[1][1] = &entity.PieceRef{Side: mover, Rank: 0}
			game.Selected = &entity.PieceRef{Side: mover, Rank: 5}
			assert.False(t, CanPlace(game, 1, 1))
		})
	}
}

func TestAttemptPlace(t *testing.T) {
	t.Run("Places the selected piece and flips the turn", func(t *testing.T) {
		// Given: a new game with blue 0 selected
		game := entity.NewGame("123")

		// When: blue places on (0, 0)
		err := AttemptPlace(game, 0, 0)

		// Then: the piece is on the board, used, deselected and red moves next
		require.NoError(t, err)
		assert.Equal(t, blue(0), game.Board[0][0])
		assert.True(t, game.Pieces[entity.SideBlue][0].Used)
		assert.Nil(t, game.Selected)
		assert.Equal(t, entity.SideRed, game.Turn)
		assert.Equal(t, entity.InProgress(), game.Outcome)
	})

	t.Run("Covering removes the smaller piece from play", func(t *testing.T) {
		// Given: blue 1 on the centre and red to move
		game := entity.NewGame("123")
		require.NoError(t, Select(game, entity.SideBlue, 1))
		require.NoError(t, AttemptPlace(game, 1, 1))

		// When: red covers it with rank 2
		require.NoError(t, Select(game, entity.SideRed, 2))
		err := AttemptPlace(game, 1, 1)

		// Then: red sits on the cell and blue 1 stays used but off the board
		require.NoError(t, err)
		assert.Equal(t, red(2), game.Board[1][1])
		assert.True(t, game.Pieces[entity.SideBlue][1].Used)
		assert.Equal(t, []entity.Piece{{Rank: 1, Side: entity.SideBlue, Used: true}}, game.CoveredPieces())
		assert.Equal(t, entity.SideBlue, game.Turn)
	})

	t.Run("Equal rank cannot cover", func(t *testing.T) {
		// Given: red 2 on (0, 1) and blue 2 selected
		game := gameWithBoard(t, entity.Board{{nil, red(2), nil}}, entity.SideBlue)
		require.NoError(t, Select(game, entity.SideBlue, 2))

		// When: blue tries to cover
		err := AttemptPlace(game, 0, 1)

		// Then: nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, red(2), game.Board[0][1])
		assert.Equal(t, blue(2), game.Selected)
		assert.Equal(t, entity.SideBlue, game.Turn)
		assert.False(t, game.Pieces[entity.SideBlue][2].Used)
	})

	t.Run("Nothing selected", func(t *testing.T) {
		game := entity.NewGame("123")
		game.Selected = nil

		err := AttemptPlace(game, 0, 0)

		require.ErrorIs(t, err, apperror.ErrNothingSelected)
		assert.Nil(t, game.Board[0][0])
		assert.Equal(t, entity.SideBlue, game.Turn)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		game := entity.NewGame("123")

		require.ErrorIs(t, AttemptPlace(game, 0, 3), apperror.ErrInvalidCell)
		require.ErrorIs(t, AttemptPlace(game, -1, 0), apperror.ErrInvalidCell)
	})

	t.Run("Game already over", func(t *testing.T) {
		// Given: blue has three in a row and red has a selection
		game := gameWithBoard(t, entity.Board{{blue(0), blue(1), blue(2)}}, entity.SideRed)
		game.Outcome = entity.Win(entity.SideBlue)
		game.Selected = red(5)

		// When: red tries to place
		err := AttemptPlace(game, 2, 2)

		// Then: the placement is ignored
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Nil(t, game.Board[2][2])
	})

	t.Run("Completing a line finishes the game", func(t *testing.T) {
		// Given: blue holds (0,0) and (0,1), red holds (1,0) and (1,1)
		game := gameWithBoard(t, entity.Board{
			{blue(0), blue(1), nil},
			{red(0), red(1), nil},
		}, entity.SideBlue)
		require.NoError(t, Select(game, entity.SideBlue, 2))

		// When: blue takes (0, 2)
		require.NoError(t, AttemptPlace(game, 0, 2))

		// Then: blue wins and further input is ignored
		assert.Equal(t, entity.Win(entity.SideBlue), game.Outcome)
		require.ErrorIs(t, Select(game, entity.SideRed, 2), apperror.ErrGameFinished)
	})
}

func TestAttemptPlace_Properties(t *testing.T) {
	// Given: a scripted game with placements and covers
	game := entity.NewGame("123")
	moves := []struct {
		side     entity.Side
		rank     int
		row, col int
	}{
		{entity.SideBlue, 0, 1, 1},
		{entity.SideRed, 1, 1, 1},
		{entity.SideBlue, 3, 1, 1},
		{entity.SideRed, 0, 0, 0},
		{entity.SideBlue, 1, 0, 0},
		{entity.SideRed, 5, 1, 1},
		{entity.SideBlue, 2, 2, 0},
	}

	for _, move := range moves {
		turnBefore := game.Turn

		// When: each move is played
		require.NoError(t, Select(game, move.side, move.rank))
		require.NoError(t, AttemptPlace(game, move.row, move.col))

		// Then: the turn has flipped
		assert.Equal(t, turnBefore.Opponent(), game.Turn)

		// Then: every used piece is either on the board or covered
		assert.Equal(t, game.UsedCount(), game.Board.Occupied()+len(game.CoveredPieces()))
	}

	assert.Len(t, game.CoveredPieces(), 4)
	assert.Equal(t, entity.InProgress(), game.Outcome)
}

func TestEvaluate(t *testing.T) {
	t.Run("Three in a row wins regardless of remaining cells", func(t *testing.T) {
		game := gameWithBoard(t, entity.Board{{blue(0), blue(0), blue(0)}}, entity.SideRed)

		assert.Equal(t, entity.Win(entity.SideBlue), Evaluate(game))
	})

	t.Run("Every line is detected", func(t *testing.T) {
		for i, line := range winLines {
			var board entity.Board
			for rank, c := range line {
				board[c[0]][c[1]] = red(rank)
			}
			game := gameWithBoard(t, board, entity.SideBlue)

			assert.Equal(t, entity.Win(entity.SideRed), Evaluate(game), "line %d", i)
		}
	})

	t.Run("Scan order decides between two completed lines", func(t *testing.T) {
		// Given: blue owns column 0 and red owns column 2
		game := gameWithBoard(t, entity.Board{
			{blue(0), nil, red(0)},
			{blue(1), nil, red(1)},
			{blue(2), nil, red(2)},
		}, entity.SideRed)

		// Then: column 0 is scanned first
		assert.Equal(t, entity.Win(entity.SideBlue), Evaluate(game))
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		game := gameWithBoard(t, entity.Board{{blue(0), red(0), blue(1)}}, entity.SideRed)

		assert.Equal(t, entity.InProgress(), Evaluate(game))
	})

	t.Run("Side to move out of pieces is a tie even with empty cells", func(t *testing.T) {
		// Given: red has used every piece but the board still has room
		game := gameWithBoard(t, entity.Board{{blue(0), red(0), nil}}, entity.SideRed)
		for rank := range game.Pieces[entity.SideRed] {
			game.Pieces[entity.SideRed][rank].Used = true
		}

		assert.Equal(t, entity.Tie(), Evaluate(game))
	})

	t.Run("Full board with no covering move is a tie", func(t *testing.T) {
		// Given: blue holds only rank 5 and every red cell is rank 5
		game := gameWithBoard(t, entity.Board{
			{blue(0), blue(1), red(5)},
			{red(5), red(5), blue(2)},
			{blue(3), blue(4), red(5)},
		}, entity.SideBlue)

		require.Equal(t, 5, game.LargestUnusedRank(entity.SideBlue))
		assert.Equal(t, entity.Tie(), Evaluate(game))
	})

	t.Run("Full board with a covering move is in progress", func(t *testing.T) {
		// Given: blue's largest unused rank is 3 and red has a rank 1 on the board
		game := gameWithBoard(t, entity.Board{
			{blue(0), blue(1), red(1)},
			{red(2), red(4), blue(2)},
			{blue(4), blue(5), red(5)},
		}, entity.SideBlue)

		require.Equal(t, 3, game.LargestUnusedRank(entity.SideBlue))
		assert.Equal(t, entity.InProgress(), Evaluate(game))
	})

	t.Run("Evaluate does not change the game", func(t *testing.T) {
		game := gameWithBoard(t, entity.Board{{blue(0), blue(1), blue(2)}}, entity.SideRed)
		game.Outcome = entity.InProgress()

		first := Evaluate(game)
		second := Evaluate(game)

		assert.Equal(t, first, second)
		assert.Equal(t, entity.InProgress(), game.Outcome)
	})
}

func TestRestart(t *testing.T) {
	// Given: a finished game
	game := gameWithBoard(t, entity.Board{{blue(0), blue(1), blue(2)}}, entity.SideRed)
	game.Outcome = entity.Win(entity.SideBlue)

	// When: the game is restarted
	restarted := Restart(game)

	// Then: a fresh game with the same ID is returned
	assert.Equal(t, entity.NewGame("123"), restarted)
}
