// Package game runs a single game of tic-tac-toe between a human, who types
// moves, and the computer, which searches for them.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/minimax"
)

// State is where the turn loop currently is.
type State int

const (
	AwaitingHumanMove State = iota
	AwaitingComputerMove
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingHumanMove:
		return "awaiting-human-move"
	case AwaitingComputerMove:
		return "awaiting-computer-move"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

const DefaultThinkDelay = time.Second

var ErrGameOver = errors.New("game is already over")

// LineReader supplies one line of text per call. It blocks until a line is
// available.
type LineReader interface {
	ReadLine() (string, error)
}

// Result describes a finished game.
type Result struct {
	// Winner is NoPlayer for a tie.
	Winner      board.Player
	Plies       int
	SearchTimes []time.Duration
}

// Game is the turn loop. It owns the one live board; the search only ever
// works on copies of it.
type Game struct {
	board  *board.Board
	onturn board.Player
	state  State
	winner board.Player
	plies  int

	in         LineReader
	out        io.Writer
	solver     *minimax.Solver
	thinkDelay time.Duration

	searchTimes []time.Duration
}

type Option func(*Game)

// WithFirstPlayer picks who moves first. The human moves first by default.
func WithFirstPlayer(p board.Player) Option {
	return func(g *Game) {
		g.onturn = p
	}
}

// WithThinkDelay sets the pause before the computer moves.
func WithThinkDelay(d time.Duration) Option {
	return func(g *Game) {
		g.thinkDelay = d
	}
}

// WithBoard starts the game from an existing position.
func WithBoard(b *board.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

func NewGame(in LineReader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		board:      board.NewBoard(),
		onturn:     board.Human,
		in:         in,
		out:        out,
		solver:     minimax.NewSolver(),
		thinkDelay: DefaultThinkDelay,
	}
	for _, o := range opts {
		o(g)
	}
	g.state = awaiting(g.onturn)
	return g
}

func awaiting(p board.Player) State {
	if p == board.Computer {
		return AwaitingComputerMove
	}
	return AwaitingHumanMove
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) PlayerOnTurn() board.Player {
	return g.onturn
}

// Winner is only meaningful once the game is over; NoPlayer means a tie.
func (g *Game) Winner() board.Player {
	return g.winner
}

// Play runs the turn loop until someone wins or the board fills up.
func (g *Game) Play(ctx context.Context) (Result, error) {
	for g.state != GameOver {
		if err := ctx.Err(); err != nil {
			return g.result(), err
		}
		if err := g.Step(ctx); err != nil {
			return g.result(), err
		}
	}
	return g.result(), nil
}

func (g *Game) result() Result {
	return Result{Winner: g.winner, Plies: g.plies, SearchTimes: g.searchTimes}
}

// Step shows the board, then either ends the game or plays one turn for
// the side on turn.
func (g *Game) Step(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	if g.state == GameOver {
		return ErrGameOver
	}
	g.showMessage(g.board.ToDisplayText())

	if w := g.board.Winner(); w != board.NoPlayer {
		g.finish(w)
		logger.Debug().Stringer("winner", w).Int("plies", g.plies).Msg("game-over")
		return nil
	}
	if g.board.IsGameOver() {
		g.finish(board.NoPlayer)
		logger.Debug().Int("plies", g.plies).Msg("game-tied")
		return nil
	}

	var err error
	switch g.onturn {
	case board.Human:
		err = g.humanTurn(ctx)
	case board.Computer:
		err = g.computerTurn(ctx)
	default:
		err = fmt.Errorf("no player on turn")
	}
	if err != nil {
		return err
	}
	g.plies++
	g.onturn = g.onturn.Opponent()
	g.state = awaiting(g.onturn)
	return nil
}

func (g *Game) finish(winner board.Player) {
	g.winner = winner
	g.state = GameOver
	g.showMessage(announcement(winner))
}

func (g *Game) humanTurn(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	for {
		g.showMessage(`Enter comma separated move: ("row,column"): `)
		line, err := g.in.ReadLine()
		if err != nil {
			return fmt.Errorf("reading human move: %w", err)
		}
		pos, err := ParseMove(line)
		if err != nil {
			g.showError(err)
			continue
		}
		m := board.NewMove(pos.Row, pos.Col, board.Human)
		if err := g.board.ApplyMove(m); err != nil {
			g.showError(err)
			continue
		}
		logger.Debug().Stringer("move", m).Msg("human-move")
		return nil
	}
}

func (g *Game) computerTurn(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	if g.thinkDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.thinkDelay):
		}
	}

	var m board.Move
	switch {
	case g.board.IsEmpty():
		g.showMessage("computer: playing random move")
		var err error
		m, err = g.board.ChooseRandomFreeMove(board.Computer)
		if err != nil {
			return err
		}
	default:
		g.showMessage("computer: thinking...")
		sol, err := g.solver.Solve(ctx, g.board, board.Computer)
		if err != nil {
			return err
		}
		g.searchTimes = append(g.searchTimes, sol.Elapsed)
		g.showMessage(fmt.Sprintf("took %.3f secs", sol.Elapsed.Seconds()))
		m = sol.Move
	}
	if err := g.board.ApplyMove(m); err != nil {
		return err
	}
	logger.Debug().Stringer("move", m).Msg("computer-move")
	return nil
}
