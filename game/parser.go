package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/tictactoe/board"
)

var ErrParse = errors.New("could not parse move")

// ParseMove reads a move typed as "row,column", for example "1,2". Both
// parts must be non-negative integers; whether they are on the board is
// for the board to decide.
func ParseMove(line string) (board.Position, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 2 {
		return board.Position{}, fmt.Errorf("%w: expected 2 comma-separated numbers, got %d",
			ErrParse, len(fields))
	}
	var coords [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return board.Position{}, fmt.Errorf("%w: %q is not a number", ErrParse, f)
		}
		if n < 0 {
			return board.Position{}, fmt.Errorf("%w: %d is negative", ErrParse, n)
		}
		coords[i] = n
	}
	return board.Position{Row: coords[0], Col: coords[1]}, nil
}
