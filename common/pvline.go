package common

import (
	"fmt"
	"strings"

	"github.com/domino14/tictactoe/board"
)

// PVLine is a principal variation: the best move for the side on turn,
// then the best reply to that, and so on until the search ends.
type PVLine struct {
	Moves []board.Move
	score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Terminal marks the line as ending here with the given value.
func (pvLine *PVLine) Terminal(score int) {
	pvLine.Clear()
	pvLine.score = score
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(m board.Move, newPVLine PVLine, score int) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, m)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

// GetPVMove returns the first move of the line, if there is one.
func (pvLine *PVLine) GetPVMove() (board.Move, bool) {
	if len(pvLine.Moves) == 0 {
		return board.Move{}, false
	}
	return pvLine.Moves[0], true
}

func (pvLine PVLine) Score() int {
	return pvLine.score
}

// Convert the principal variation line to a string.
func (pvLine PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d\n", pvLine.score)
	for i, m := range pvLine.Moves {
		fmt.Fprintf(&sb, "%d: %s %s\n", i+1, m.Player(), m.Position())
	}
	return sb.String()
}

func (pvLine PVLine) NLBString() string {
	// no line breaks
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d; ", pvLine.score)
	for i, m := range pvLine.Moves {
		fmt.Fprintf(&sb, "%d: %s %s; ", i+1, m.Player(), m.Position())
	}
	return sb.String()
}
