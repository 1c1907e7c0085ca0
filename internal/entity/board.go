package entity

import (
	"fmt"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
)

const BoardSize = 9

// WinLines holds the eight canonical lines of a 3x3 board: rows, columns, diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid laid out row-major, index = row*3 + col.
// Cells are only ever filled; a round that needs an empty grid gets a new Board.
type Board struct {
	cells [BoardSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// BoardFromCells builds a board with arbitrary contents. Cells holding anything
// other than X or O are left empty.
func BoardFromCells(cells [BoardSize]Mark) *Board {
	board := NewBoard()
	for i, mark := range cells {
		if mark.Valid() {
			board.cells[i] = mark
		}
	}

	return board
}

// ApplyMove places mark at index. It fails with apperror.ErrCellOccupied when the
// cell already holds a mark and leaves the board untouched on any error.
func (that *Board) ApplyMove(index int, mark Mark) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !mark.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(mark))
	}

	if that.cells[index] != NoMark {
		return fmt.Errorf("%w: cell %d holds %s", apperror.ErrCellOccupied, index, that.cells[index])
	}

	that.cells[index] = mark

	return nil
}

// Cell returns the mark at index, NoMark for an empty or out of range cell.
func (that *Board) Cell(index int) Mark {
	if index < 0 || index >= BoardSize {
		return NoMark
	}
	return that.cells[index]
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [BoardSize]Mark {
	return that.cells
}

// Winner scans every line for X first, then for O, and returns the first mark
// that owns a complete line.
func (that *Board) Winner() (Mark, bool) {
	for _, mark := range [...]Mark{MarkX, MarkO} {
		if that.hasWon(mark) {
			return mark, true
		}
	}

	return NoMark, false
}

func (that *Board) hasWon(mark Mark) bool {
	for _, line := range WinLines {
		if that.cells[line[0]] == mark && that.cells[line[1]] == mark && that.cells[line[2]] == mark {
			return true
		}
	}

	return false
}

// Filled returns the number of non-empty cells.
func (that *Board) Filled() int {
	filled := 0
	for _, cell := range that.cells {
		if cell != NoMark {
			filled++
		}
	}

	return filled
}

func (that *Board) IsFull() bool {
	return that.Filled() == BoardSize
}
