package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-unbeatable/internal/entity"
)

// ANSI colours matching the screen front end: yellow human, red computer.
const (
	colorHuman    = "3"
	colorComputer = "1"
)

// render prints the board with 1-based row and column labels, then the message bar.
func (that *Server) render() {
	var builder strings.Builder

	builder.WriteString("  ")
	for col := 0; col < entity.Size; col++ {
		builder.WriteString(" " + strconv.Itoa(col+1))
	}
	builder.WriteString("\n")

	for row := 0; row < entity.Size; row++ {
		builder.WriteString(" " + strconv.Itoa(row+1))
		for col := 0; col < entity.Size; col++ {
			builder.WriteString(" " + that.symbol(row, col))
		}
		builder.WriteString("\n")
	}

	if message := that.manager.Message(); message != "" {
		builder.WriteString(that.output.String(message).Bold().String())
		builder.WriteString("\n")
	}

	that.printf("%s", builder.String())
}

func (that *Server) symbol(row, col int) string {
	mark, err := that.manager.MarkAt(row, col)
	if err != nil {
		return "?"
	}

	switch mark {
	case entity.Human:
		return that.output.String(string(that.humanSymbol)).
			Foreground(that.output.Color(colorHuman)).
			Bold().
			String()
	case entity.Computer:
		return that.output.String(string(that.computerSymbol)).
			Foreground(that.output.Color(colorComputer)).
			Bold().
			String()
	default:
		return "."
	}
}
