package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
	"github.com/rocketscienceinc/tictactoe-plus/internal/tictactoe"
)

const helpText = `commands:
  select <rank>     pick a piece of the side to move (0 smallest, 5 largest)
  place <row> <col> put the selected piece on a cell (0-2)
  new               start over
  quit              leave`

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong arguments")
)

// session is one hot-seat game driven from a terminal; both sides share the keyboard.
type session struct {
	game *entity.Game
	out  io.Writer
}

func newSession(out io.Writer) *session {
	return &session{
		game: entity.NewGame(uuid.NewString()),
		out:  out,
	}
}

// execute - runs one input line. It returns true when the player asked to quit.
func (that *session) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(that.out, helpText)
		return false, nil
	case "new":
		that.game = tictactoe.Restart(that.game)
	case "select":
		if len(fields) != 2 {
			return false, fmt.Errorf("%w: select <rank>", errUsage)
		}

		rank, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("%w: rank must be a number", errUsage)
		}

		if err = tictactoe.Select(that.game, that.game.Turn, rank); err != nil {
			return false, err
		}
	case "place":
		if len(fields) != 3 {
			return false, fmt.Errorf("%w: place <row> <col>", errUsage)
		}

		row, rowErr := strconv.Atoi(fields[1])
		col, colErr := strconv.Atoi(fields[2])
		if rowErr != nil || colErr != nil {
			return false, fmt.Errorf("%w: row and col must be numbers", errUsage)
		}

		if err := tictactoe.AttemptPlace(that.game, row, col); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}

	that.render()

	return false, nil
}

// render - prints the board, the pieces each side has left and the status line.
func (that *session) render() {
	var sb strings.Builder

	sb.WriteString("    0  1  2\n")
	for row := range that.game.Board {
		fmt.Fprintf(&sb, "%d ", row)
		for col := range that.game.Board[row] {
			sb.WriteString(" " + cellLabel(that.game.Board[row][col]))
		}
		sb.WriteString("\n")
	}

	for _, side := range entity.Sides {
		ranks := make([]string, 0, entity.PieceCount)
		for _, piece := range that.game.RemainingPieces(side) {
			ranks = append(ranks, strconv.Itoa(piece.Rank))
		}
		fmt.Fprintf(&sb, "%-5s %s\n", side, strings.Join(ranks, " "))
	}

	if that.game.Selected != nil && !that.game.IsFinished() {
		fmt.Fprintf(&sb, "selected: %s\n", cellLabel(that.game.Selected))
	}

	sb.WriteString(that.game.StatusText() + "\n")

	fmt.Fprint(that.out, sb.String())
}

func cellLabel(ref *entity.PieceRef) string {
	if ref == nil {
		return " ."
	}

	return fmt.Sprintf("%c%d", strings.ToUpper(string(ref.Side))[0], ref.Rank)
}
