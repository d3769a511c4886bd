// Package minimax picks the computer's moves by searching the whole game
// tree below a position. There is no pruning and no caching; a 3x3 board is
// small enough that plain minimax finishes quickly.
package minimax

import (
	"math"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/common"
)

const (
	WinScore  = 1
	LossScore = -1
	DrawScore = 0
)

// Minimax searches up to depth plies below b with onTurn to move. The
// computer maximizes and the human minimizes. It returns the chosen cell,
// which is nil at a terminal position, and the backed-up score: +1 for a
// computer win, -1 for a human win and 0 otherwise.
//
// Ties keep the first move found in row-major order, so the result is
// fully determined by the position.
func Minimax(b *board.Board, depth int, onTurn board.Player) (*board.Position, int) {
	s := &searcher{}
	return s.minimax(b, depth, onTurn, nil)
}

type searcher struct {
	nodes uint64
}

func evaluate(b *board.Board) int {
	switch b.Winner() {
	case board.Computer:
		return WinScore
	case board.Human:
		return LossScore
	}
	return DrawScore
}

func isTerminal(b *board.Board, depth int) bool {
	return depth == 0 || b.Winner() != board.NoPlayer || b.IsGameOver()
}

// minimax fills pv with the line of best play when pv is not nil.
func (s *searcher) minimax(b *board.Board, depth int, onTurn board.Player,
	pv *common.PVLine) (*board.Position, int) {

	s.nodes++
	if isTerminal(b, depth) {
		score := evaluate(b)
		if pv != nil {
			pv.Terminal(score)
		}
		return nil, score
	}

	maximizing := onTurn == board.Computer
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}
	var best *board.Position

	for pos := range b.FreeCells() {
		m := board.NewMove(pos.Row, pos.Col, onTurn)
		child := b.Copy()
		// Free cells are always on the board.
		_ = child.ApplyMove(m)

		var childPV *common.PVLine
		if pv != nil {
			childPV = &common.PVLine{}
		}
		_, score := s.minimax(child, depth-1, onTurn.Opponent(), childPV)

		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			p := pos
			best = &p
			if pv != nil {
				pv.Update(m, *childPV, score)
			}
		}
	}
	return best, bestScore
}
