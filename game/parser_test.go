package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tictactoe/board"
)

func TestParseMove(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expPos board.Position
	}
	for _, tc := range []testdata{
		{"1,1", board.Position{Row: 1, Col: 1}},
		{"0,2", board.Position{Row: 0, Col: 2}},
		{" 2,0\n", board.Position{Row: 2, Col: 0}},
		{"2 , 1", board.Position{Row: 2, Col: 1}},
		// range is checked by the board, not here
		{"7,9", board.Position{Row: 7, Col: 9}},
	} {
		pos, err := ParseMove(tc.line)
		is.NoErr(err)
		is.Equal(pos, tc.expPos)
	}
}

func TestParseMoveErrors(t *testing.T) {
	is := is.New(t)
	for _, line := range []string{"", "1", "1,1,1", "1,2,3", "x,1", "a,b", "1,", "-1,0", "1;2"} {
		_, err := ParseMove(line)
		is.True(errors.Is(err, ErrParse)) // should not parse
	}
}
