// Package automatic plays the computer against a random opponent many times
// over, to check that the search never loses and to see how long it takes.
package automatic

import (
	"context"
	"io"
	"time"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/game"
)

// randomHuman types a uniformly random free cell of the board it watches.
type randomHuman struct {
	b *board.Board
}

func (r *randomHuman) ReadLine() (string, error) {
	m, err := r.b.ChooseRandomFreeMove(board.Human)
	if err != nil {
		return "", err
	}
	return m.Position().String(), nil
}

// GameRunner plays one game at a time through the ordinary turn loop.
type GameRunner struct {
	out        io.Writer
	thinkDelay time.Duration
	first      board.Player
}

func NewGameRunner(out io.Writer, thinkDelay time.Duration) *GameRunner {
	if out == nil {
		out = io.Discard
	}
	return &GameRunner{out: out, thinkDelay: thinkDelay, first: board.Computer}
}

// PlayGame plays a full game, the computer moving first.
func (r *GameRunner) PlayGame(ctx context.Context) (game.Result, error) {
	human := &randomHuman{}
	g := game.NewGame(human, r.out,
		game.WithFirstPlayer(r.first),
		game.WithThinkDelay(r.thinkDelay))
	human.b = g.Board()
	return g.Play(ctx)
}
