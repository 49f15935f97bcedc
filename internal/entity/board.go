package entity

import "fmt"

const BoardSize = 3

// Cell is either empty or occupied by a player. The zero value is empty.
type Cell struct {
	occupied bool
	player   Player
}

func Occupied(player Player) Cell {
	return Cell{occupied: true, player: player}
}

func (that Cell) IsEmpty() bool {
	return !that.occupied
}

// Occupant - returns the player holding the cell, ok is false for an empty cell.
func (that Cell) Occupant() (Player, bool) {
	return that.player, that.occupied
}

// Board is a row-major 3x3 grid. It is a value type, copies do not share cells.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() Board {
	return Board{}
}

// Cell - returns the cell at the zero-based position. The caller keeps the indexes in range.
func (that Board) Cell(row, col int) Cell {
	return that.cells[row][col]
}

// Set - marks the cell for the player. The caller checks bounds and occupancy first.
func (that *Board) Set(row, col int, player Player) {
	that.cells[row][col] = Occupied(player)
}

// Cells - returns all cells in row-major order.
func (that Board) Cells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for _, row := range that.cells {
		cells = append(cells, row[:]...)
	}
	return cells
}

// Rows - returns the grid rows.
func (that Board) Rows() [BoardSize][BoardSize]Cell {
	return that.cells
}

// Move is a zero-based (row, column) target.
type Move struct {
	Row int
	Col int
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// String - formats the move the way players type it, 1-based.
func (that Move) String() string {
	return fmt.Sprintf("%d,%d", that.Row+1, that.Col+1)
}
