package board

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"lukechampine.com/frand"
)

var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrNoFreeCells = errors.New("no free cells")
)

// Board is the playing surface for one game. It owns a Grid and nothing
// else, so copying the struct copies the whole position.
type Board struct {
	grid Grid
}

func NewBoard() *Board {
	return &Board{}
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// ApplyMove places the move's player on its cell. It fails only if the
// cell is off the board; an occupied cell is overwritten.
func (b *Board) ApplyMove(m Move) error {
	if !inRange(m.Row(), m.Col()) {
		return fmt.Errorf("%w: %d,%d", ErrOutOfBounds, m.Row(), m.Col())
	}
	b.grid.Set(m.Row(), m.Col(), m.Player())
	return nil
}

// ChooseRandomFreeMove picks a free cell uniformly at random.
func (b *Board) ChooseRandomFreeMove(p Player) (Move, error) {
	free := slices.Collect(b.grid.FreeCells())
	if len(free) == 0 {
		return Move{}, ErrNoFreeCells
	}
	pos := free[frand.Intn(len(free))]
	return NewMove(pos.Row, pos.Col, p), nil
}

func (b *Board) FreeCells() iter.Seq[Position] {
	return b.grid.FreeCells()
}

func (b *Board) CountFree() int {
	n := 0
	for range b.grid.FreeCells() {
		n++
	}
	return n
}

func (b *Board) IsEmptyAt(row, col int) bool {
	return b.grid.IsEmptyAt(row, col)
}

// At returns the owner of a cell.
func (b *Board) At(row, col int) Player {
	return b.grid.At(row, col)
}

// IsGameOver is true once every cell is filled. It does not look for a
// winner; callers check Winner first.
func (b *Board) IsGameOver() bool {
	return b.grid.AllFilled()
}

func (b *Board) IsEmpty() bool {
	return b.CountFree() == numCells
}

func (b *Board) Winner() Player {
	return b.grid.Winner()
}
