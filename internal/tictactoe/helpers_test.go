package tictactoe

import (
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// boardOf builds a board from three rows of 'X', 'O' or ' '.
func boardOf(rows ...string) entity.Board {
	board := entity.NewBoard()
	for r, row := range rows {
		for c, mark := range row {
			switch mark {
			case 'X':
				board.Set(r, c, entity.PlayerX)
			case 'O':
				board.Set(r, c, entity.PlayerO)
			}
		}
	}
	return board
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedConsole replays intents and records everything shown to the players.
type scriptedConsole struct {
	intents  []entity.Intent
	messages []string
	boards   []entity.Board
}

func newScriptedConsole(intents ...entity.Intent) *scriptedConsole {
	return &scriptedConsole{intents: intents}
}

func (that *scriptedConsole) ReadIntent() (entity.Intent, error) {
	if len(that.intents) == 0 {
		return entity.Intent{}, apperror.ErrInputClosed
	}

	intent := that.intents[0]
	that.intents = that.intents[1:]

	return intent, nil
}

func (that *scriptedConsole) ShowBoard(board entity.Board) {
	that.boards = append(that.boards, board)
}

func (that *scriptedConsole) Announce(message string) {
	that.messages = append(that.messages, message)
}

// move converts 1-based player coordinates to a move intent.
func move(row, col int) entity.Intent {
	return entity.MoveIntent(row-1, col-1)
}
