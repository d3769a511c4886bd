package minimax

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/common"
)

var (
	ErrNoMoves = errors.New("position is already decided; nothing to search")
)

// Solution is the result of a full search from one position.
type Solution struct {
	Move    board.Move
	Score   int
	PV      common.PVLine
	Nodes   uint64
	Elapsed time.Duration
}

// Solver runs a full-depth search for the side on turn and keeps some
// bookkeeping about it.
type Solver struct {
	lastNodes uint64
}

func NewSolver() *Solver {
	return &Solver{}
}

// Solve searches b to the end of the game for onTurn. It never modifies b.
func (s *Solver) Solve(ctx context.Context, b *board.Board, onTurn board.Player) (*Solution, error) {
	logger := zerolog.Ctx(ctx)

	if b.Winner() != board.NoPlayer || b.IsGameOver() {
		return nil, ErrNoMoves
	}
	depth := b.CountFree()
	logger.Debug().Int("depth", depth).Stringer("onturn", onTurn).Msg("minimax-solve-config")

	srch := &searcher{}
	pv := &common.PVLine{}
	tstart := time.Now()
	pos, score := srch.minimax(b, depth, onTurn, pv)
	elapsed := time.Since(tstart)
	s.lastNodes = srch.nodes

	if pos == nil {
		// Can't happen on a board with a free cell and no winner.
		return nil, ErrNoMoves
	}

	logger.Debug().
		Uint64("nodes", srch.nodes).
		Dur("elapsed", elapsed).
		Int("score", score).
		Str("pv", pv.NLBString()).
		Msg("minimax-solve-done")

	return &Solution{
		Move:    board.NewMove(pos.Row, pos.Col, onTurn),
		Score:   score,
		PV:      *pv,
		Nodes:   srch.nodes,
		Elapsed: elapsed,
	}, nil
}

// LastNodes returns the number of positions visited by the last Solve.
func (s *Solver) LastNodes() uint64 {
	return s.lastNodes
}
