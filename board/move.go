package board

import "fmt"

// Position addresses a single cell.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// A Move places a player's mark on a cell. It is consumed once by
// Board.ApplyMove.
type Move struct {
	pos    Position
	player Player
}

func NewMove(row, col int, player Player) Move {
	return Move{pos: Position{Row: row, Col: col}, player: player}
}

func (m Move) Row() int           { return m.pos.Row }
func (m Move) Col() int           { return m.pos.Col }
func (m Move) Position() Position { return m.pos }
func (m Move) Player() Player     { return m.player }

func (m Move) String() string {
	return fmt.Sprintf("%s@%s", m.player.Symbol(), m.pos)
}
