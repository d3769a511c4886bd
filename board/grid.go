package board

import "iter"

// Dim is the number of rows and columns.
const Dim = 3

const numCells = Dim * Dim

// winPatterns holds one mask per line under row-major indexing: three rows,
// three columns, then the two diagonals.
var winPatterns = [8]uint16{
	0b000_000_111,
	0b000_111_000,
	0b111_000_000,
	0b001_001_001,
	0b010_010_010,
	0b100_100_100,
	0b100_010_001,
	0b001_010_100,
}

// Grid is a fixed 3x3 array of cell owners. It also keeps an occupancy
// mask per player; bit i is set iff that player owns cell i (row*Dim+col).
// The masks always agree with the cells.
type Grid struct {
	cells [numCells]Player
	masks [Computer + 1]uint16
}

func cellIndex(row, col int) int {
	return row*Dim + col
}

func cellPosition(idx int) Position {
	return Position{Row: idx / Dim, Col: idx % Dim}
}

func inRange(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// Set writes the cell owner. The caller guarantees the coordinates are in
// range. Whatever previously occupied the cell is dropped from its mask.
func (g *Grid) Set(row, col int, p Player) {
	idx := cellIndex(row, col)
	bit := uint16(1) << idx
	if prev := g.cells[idx]; prev != NoPlayer {
		g.masks[prev] &^= bit
	}
	g.cells[idx] = p
	if p != NoPlayer {
		g.masks[p] |= bit
	}
}

// At returns the owner of a cell, or NoPlayer.
func (g *Grid) At(row, col int) Player {
	return g.cells[cellIndex(row, col)]
}

func (g *Grid) IsEmptyAt(row, col int) bool {
	return g.At(row, col) == NoPlayer
}

// FreeCells yields every empty cell in row-major order. The sequence can be
// ranged over any number of times.
func (g *Grid) FreeCells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for idx, p := range g.cells {
			if p != NoPlayer {
				continue
			}
			if !yield(cellPosition(idx)) {
				return
			}
		}
	}
}

func (g *Grid) AllFilled() bool {
	return g.masks[Human]|g.masks[Computer] == 1<<numCells-1
}

// Mask returns the occupancy mask for a player.
func (g *Grid) Mask(p Player) uint16 {
	if p != Human && p != Computer {
		return 0
	}
	return g.masks[p]
}

func hasLine(mask uint16) bool {
	for _, pattern := range winPatterns {
		if mask&pattern == pattern {
			return true
		}
	}
	return false
}

// Winner reports who owns a complete line. The human is checked first, so a
// grid where both players own a line (impossible in alternating play)
// reports Human.
func (g *Grid) Winner() Player {
	if hasLine(g.masks[Human]) {
		return Human
	}
	if hasLine(g.masks[Computer]) {
		return Computer
	}
	return NoPlayer
}
