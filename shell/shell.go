// Package shell hooks the game up to an interactive terminal.
package shell

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
)

// lineSource is the part of *readline.Instance the controller reads from.
type lineSource interface {
	Readline() (string, error)
}

type ShellController struct {
	l      *readline.Instance
	src    lineSource
	out    io.Writer
	config *config.Config
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtictactoe>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &ShellController{l: l, src: l, out: l.Stdout(), config: cfg}, nil
}

// ReadLine returns the next line typed at the prompt. A Ctrl-C on a
// partially typed line throws the line away and keeps reading; a Ctrl-C on
// an empty line returns readline.ErrInterrupt. Ctrl-D returns io.EOF.
func (sc *ShellController) ReadLine() (string, error) {
	for {
		line, err := sc.src.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", err
			}
			continue
		} else if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

// Play runs one game against the computer.
func (sc *ShellController) Play(ctx context.Context) (game.Result, error) {
	first, err := sc.config.FirstPlayer()
	if err != nil {
		return game.Result{}, err
	}
	g := game.NewGame(sc, sc.out,
		game.WithFirstPlayer(first),
		game.WithThinkDelay(sc.config.ThinkDelay()))
	res, err := g.Play(ctx)
	if err != nil {
		return res, err
	}
	log.Debug().Stringer("winner", res.Winner).Int("plies", res.Plies).Msg("session-done")
	return res, nil
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}

func (sc *ShellController) ShowMessage(msg string) {
	showMessage(msg, sc.out)
}
