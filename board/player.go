package board

// Player is the owner of a cell, and also the side on turn. The zero
// value is NoPlayer, which marks an empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	Human
	Computer
)

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Human:
		return Computer
	case Computer:
		return Human
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Human:
		return "Human"
	case Computer:
		return "Computer"
	}
	return "none"
}

// Symbol is the character used to draw this player's cells.
func (p Player) Symbol() string {
	switch p {
	case Human:
		return "O"
	case Computer:
		return "X"
	}
	return " "
}
