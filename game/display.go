package game

import (
	"io"

	"github.com/domino14/tictactoe/board"
)

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (g *Game) showMessage(msg string) {
	showMessage(msg, g.out)
}

func (g *Game) showError(err error) {
	g.showMessage("Error: " + err.Error())
}

func announcement(winner board.Player) string {
	switch winner {
	case board.Human:
		return "You win!"
	case board.Computer:
		return "Computer wins!"
	}
	return "a tie!"
}
