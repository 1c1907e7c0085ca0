package render

import (
	"strings"
	"testing"

	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Small(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// When: rendering a new board
		text := Render(entity.NewBoard(), Small)

		// Then: every cell is blank
		expected := "" +
			"+---+---+---+\n" +
			"|   |   |   |\n" +
			"+---+---+---+\n" +
			"|   |   |   |\n" +
			"+---+---+---+\n" +
			"|   |   |   |\n" +
			"+---+---+---+\n"
		assert.Equal(t, expected, text)
	})

	t.Run("Marks are drawn row-major", func(t *testing.T) {
		// Given: X O X / X O O / O X X
		board := entity.BoardFromCells([9]entity.Mark{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkO,
			entity.MarkO, entity.MarkX, entity.MarkX,
		})

		// When: rendering it small
		text := Render(board, Small)

		// Then: each row shows one character per cell
		lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		require.Len(t, lines, 7)
		assert.Equal(t, "| X | O | X |", lines[1])
		assert.Equal(t, "| X | O | O |", lines[3])
		assert.Equal(t, "| O | X | X |", lines[5])
	})
}

func TestRender_Large(t *testing.T) {
	t.Run("Layout", func(t *testing.T) {
		// When: rendering a new board
		text := Render(entity.NewBoard(), Large)

		// Then: three rows of eight glyph lines between borders and separators
		lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		require.Len(t, lines, 1+3*(glyphHeight+1))
		assert.Equal(t, largeBorder, lines[0])
		assert.Equal(t, largeSeparator, lines[1+glyphHeight])
		assert.Equal(t, largeSeparator, lines[2+2*glyphHeight])
		assert.Equal(t, largeBorder, lines[len(lines)-1])

		for _, line := range lines {
			assert.Len(t, line, len(largeBorder))
		}
	})

	t.Run("Glyphs land in their cells", func(t *testing.T) {
		// Given: X in the top-left corner and O in the center
		board := entity.NewBoard()
		require.NoError(t, board.ApplyMove(0, entity.MarkX))
		require.NoError(t, board.ApplyMove(4, entity.MarkO))

		// When: rendering it large
		lines := strings.Split(Render(board, Large), "\n")

		// Then: the first row starts with the X glyph and the middle row holds the O glyph
		assert.Equal(t, "|"+glyphX[0]+"|"+glyphBlank+"|"+glyphBlank+"|", lines[1])
		assert.Equal(t, "|"+glyphBlank+"|"+glyphO[0]+"|"+glyphBlank+"|", lines[2+glyphHeight])
	})

	t.Run("Rendering does not touch the board", func(t *testing.T) {
		// Given: a board mid-round
		board := entity.NewBoard()
		require.NoError(t, board.ApplyMove(8, entity.MarkX))
		before := board.Cells()

		// When: it is rendered in both sizes
		first := Render(board, Large)
		_ = Render(board, Small)
		second := Render(board, Large)

		// Then: the board and the output are unchanged
		assert.Equal(t, before, board.Cells())
		assert.Equal(t, first, second)
	})
}
