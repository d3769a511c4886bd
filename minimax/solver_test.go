package minimax

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tictactoe/board"
)

func TestSolveMatchesMinimax(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	for _, layout := range []string{"O........", "X../OO./...", "X.O/X.O/...", "O...X...O"} {
		b := mustBoard(t, layout)
		onTurn := board.Computer
		if b.CountFree()%2 == 1 {
			onTurn = board.Human
		}
		sol, err := s.Solve(context.Background(), b, onTurn)
		is.NoErr(err)
		pos, score := Minimax(b, b.CountFree(), onTurn)
		is.Equal(sol.Move.Position(), *pos)
		is.Equal(sol.Move.Player(), onTurn)
		is.Equal(sol.Score, score)
		is.True(sol.Nodes > 0)
		is.Equal(s.LastNodes(), sol.Nodes)
	}
}

func TestPVReachesEndOfGame(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, "O........")
	sol, err := NewSolver().Solve(context.Background(), b, board.Computer)
	is.NoErr(err)
	// A corner opening is a draw with best play.
	is.Equal(sol.Score, DrawScore)
	is.Equal(sol.PV.Score(), sol.Score)

	first, ok := sol.PV.GetPVMove()
	is.True(ok)
	is.Equal(first, sol.Move)

	cp := b.Copy()
	turn := board.Computer
	for _, m := range sol.PV.Moves {
		is.Equal(m.Player(), turn)
		is.True(cp.IsEmptyAt(m.Row(), m.Col()))
		is.NoErr(cp.ApplyMove(m))
		turn = turn.Opponent()
	}
	is.True(cp.Winner() != board.NoPlayer || cp.IsGameOver())
	is.Equal(b.Layout(), "O........")
}

func TestSolveDecidedPosition(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	_, err := s.Solve(context.Background(), mustBoard(t, "XXX/OO./..."), board.Human)
	is.True(errors.Is(err, ErrNoMoves))
	_, err = s.Solve(context.Background(), mustBoard(t, "OXO/XXO/OOX"), board.Computer)
	is.True(errors.Is(err, ErrNoMoves))
}
