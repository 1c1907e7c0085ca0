package render

import "github.com/mersenne-twister/tic-tac-toe/internal/entity"

const glyphHeight = 8

var glyphX = [glyphHeight]string{
	`    Y88b   d88P    `,
	`     Y88b d88P     `,
	`      Y88o88P      `,
	`       Y888P       `,
	`       d888b       `,
	`      d88888b      `,
	`     d88P Y88b     `,
	`    d88P   Y88b    `,
}

var glyphO = [glyphHeight]string{
	`     .d88888b.     `,
	`    d88P" "Y88b    `,
	`    888     888    `,
	`    888     888    `,
	`    888     888    `,
	`    888     888    `,
	`    Y88b. .d88P    `,
	`     "Y88888P"     `,
}

const glyphBlank = `                   `

// glyphLine returns one row of the block glyph for mark.
func glyphLine(mark entity.Mark, line int) string {
	switch mark {
	case entity.MarkX:
		return glyphX[line]
	case entity.MarkO:
		return glyphO[line]
	default:
		return glyphBlank
	}
}
