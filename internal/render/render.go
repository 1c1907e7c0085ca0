// Package render turns a board into display text.
package render

import (
	"strings"

	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
)

type Size int

const (
	Large Size = iota
	Small
)

const (
	largeBorder    = "-------------------------------------------------------------"
	largeSeparator = "|-------------------|-------------------|-------------------|"

	smallBorder = "+---+---+---+"
)

// Render draws board in the requested size. It only reads the board.
func Render(board *entity.Board, size Size) string {
	cells := board.Cells()

	if size == Small {
		return renderSmall(cells)
	}
	return renderLarge(cells)
}

func renderLarge(cells [entity.BoardSize]entity.Mark) string {
	var sb strings.Builder

	sb.WriteString(largeBorder + "\n")

	for row := 0; row < 3; row++ {
		for line := 0; line < glyphHeight; line++ {
			sb.WriteString("|")
			for col := 0; col < 3; col++ {
				sb.WriteString(glyphLine(cells[row*3+col], line))
				sb.WriteString("|")
			}
			sb.WriteString("\n")
		}

		if row != 2 {
			sb.WriteString(largeSeparator + "\n")
		} else {
			sb.WriteString(largeBorder + "\n")
		}
	}

	return sb.String()
}

func renderSmall(cells [entity.BoardSize]entity.Mark) string {
	var sb strings.Builder

	sb.WriteString(smallBorder + "\n")

	for row := 0; row < 3; row++ {
		sb.WriteString("|")
		for col := 0; col < 3; col++ {
			symbol := " "
			if mark := cells[row*3+col]; mark.Valid() {
				symbol = string(mark)
			}
			sb.WriteString(" " + symbol + " |")
		}
		sb.WriteString("\n" + smallBorder + "\n")
	}

	return sb.String()
}
