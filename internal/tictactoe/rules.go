package tictactoe

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinCombos lists every line as row-major cell indexes: rows, columns, main diagonal, anti diagonal.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

// Winner - returns the player holding the first complete line in WinCombos order.
func Winner(board entity.Board) (entity.Player, bool) {
	cells := board.Cells()

	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a.Occupant()
		}
	}

	return entity.PlayerX, false
}

// IsFilled - reports whether all nine cells are occupied, whether or not someone has won.
func IsFilled(board entity.Board) bool {
	return lo.EveryBy(board.Cells(), func(cell entity.Cell) bool {
		return !cell.IsEmpty()
	})
}

func IsOccupied(board entity.Board, move entity.Move) bool {
	return !board.Cell(move.Row, move.Col).IsEmpty()
}
