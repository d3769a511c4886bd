package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/matryer/is"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
)

type readResult struct {
	line string
	err  error
}

type fakeSource struct {
	results []readResult
}

func (f *fakeSource) Readline() (string, error) {
	if len(f.results) == 0 {
		return "", io.EOF
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.line, r.err
}

func newTestController(cfg *config.Config, results ...readResult) (*ShellController, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &ShellController{src: &fakeSource{results: results}, out: out, config: cfg}, out
}

func TestFilterInput(t *testing.T) {
	is := is.New(t)
	_, ok := filterInput(readline.CharCtrlZ)
	is.True(!ok)
	r, ok := filterInput('5')
	is.True(ok)
	is.Equal(r, '5')
}

func TestReadLine(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(config.DefaultConfig(),
		readResult{"  1,2 \n", nil},
		readResult{"half typ", readline.ErrInterrupt},
		readResult{"0,0", nil},
		readResult{"", readline.ErrInterrupt},
	)
	line, err := sc.ReadLine()
	is.NoErr(err)
	is.Equal(line, "1,2")

	// the interrupted partial line is dropped
	line, err = sc.ReadLine()
	is.NoErr(err)
	is.Equal(line, "0,0")

	_, err = sc.ReadLine()
	is.True(errors.Is(err, readline.ErrInterrupt))

	_, err = sc.ReadLine()
	is.True(errors.Is(err, io.EOF))
}

func TestPlayAbortsOnEOF(t *testing.T) {
	is := is.New(t)
	sc, out := newTestController(config.DefaultConfig())
	_, err := sc.Play(context.Background())
	is.True(errors.Is(err, io.EOF))
	is.True(strings.Contains(out.String(), `Enter comma separated move: ("row,column"): `))
}

func TestPlayComputerFirst(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigFirstPlayer, "computer")
	cfg.Set(config.ConfigThinkDelay, "0s")

	src := &boardFollower{}
	sc := &ShellController{src: src, out: &bytes.Buffer{}, config: cfg}
	src.sc = sc
	res, err := sc.Play(context.Background())
	is.NoErr(err)
	is.True(res.Winner != board.Human)
	is.True(strings.Contains(sc.out.(*bytes.Buffer).String(), "computer: playing random move"))
}

// boardFollower answers with the first free cell of the board the game
// just printed.
type boardFollower struct {
	sc *ShellController
}

func (b *boardFollower) Readline() (string, error) {
	var rows []string
	for _, line := range strings.Split(b.sc.out.(*bytes.Buffer).String(), "\n") {
		if strings.HasPrefix(line, "|") {
			rows = append(rows, line)
		}
	}
	if len(rows) < board.Dim {
		return "", io.EOF
	}
	for r, row := range rows[len(rows)-board.Dim:] {
		for c, ch := range strings.Split(strings.Trim(row, "|"), "|") {
			if ch == " " {
				return board.Position{Row: r, Col: c}.String(), nil
			}
		}
	}
	return "", io.EOF
}
