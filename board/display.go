package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadLayout = errors.New("bad board layout")

// ToDisplayText draws the board as rows of |c|c|c| cells, each row
// followed by a separator line. The text starts with a newline.
func (b *Board) ToDisplayText() string {
	sep := strings.Repeat("-", 2*Dim+1)
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(sep)
	sb.WriteString("\n")
	for row := range Dim {
		sb.WriteString("|")
		for col := range Dim {
			sb.WriteString(b.At(row, col).Symbol())
			sb.WriteString("|")
		}
		sb.WriteString("\n")
		sb.WriteString(sep)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.ToDisplayText()
}

// Layout is the compact form of the board: nine row-major characters,
// O for the human, X for the computer and . for an empty cell.
func (b *Board) Layout() string {
	var sb strings.Builder
	for idx := range numCells {
		pos := cellPosition(idx)
		switch p := b.At(pos.Row, pos.Col); p {
		case NoPlayer:
			sb.WriteByte('.')
		default:
			sb.WriteString(p.Symbol())
		}
	}
	return sb.String()
}

// FromString builds a board from a compact layout (see Layout). Spaces are
// accepted for empty cells and a "/" may separate rows.
func FromString(layout string) (*Board, error) {
	layout = strings.ReplaceAll(layout, "/", "")
	if len(layout) != numCells {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrBadLayout, numCells, len(layout))
	}
	b := NewBoard()
	for idx, c := range []byte(layout) {
		pos := cellPosition(idx)
		switch c {
		case 'O', 'o':
			b.grid.Set(pos.Row, pos.Col, Human)
		case 'X', 'x':
			b.grid.Set(pos.Row, pos.Col, Computer)
		case '.', ' ':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrBadLayout, c, idx)
		}
	}
	return b, nil
}
