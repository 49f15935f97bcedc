package entity

// Player is one of the two marks taking turns on the board.
type Player int

const (
	PlayerX Player = iota
	PlayerO
)

// Next - returns the player moving after that one.
func (that Player) Next() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	if that == PlayerO {
		return "O"
	}
	return "X"
}
