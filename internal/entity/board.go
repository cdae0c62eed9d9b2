package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// BoardSize is the side length of the square grid. A winning line spans the whole side.
const BoardSize = 3

// Board is a row-major grid of cells addressed by row*BoardSize+col.
// Passing a Board by value hands out a read-only snapshot.
type Board [BoardSize * BoardSize]Cell

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

func inRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !inRange(row, col) {
		return CellEmpty, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return that[row*BoardSize+col], nil
}

// Set marks an empty cell for player. A marked cell never changes again.
func (that *Board) Set(row, col int, player Player) error {
	cell, err := that.Get(row, col)
	if err != nil {
		return err
	}

	if !cell.IsEmpty() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row*BoardSize+col] = MarkedBy(player)

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// MarkedCount returns the number of non-empty cells.
func (that *Board) MarkedCount() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Rows returns the snapshot consumed by renderers.
func (that *Board) Rows() [BoardSize][BoardSize]rune {
	var rows [BoardSize][BoardSize]rune
	for i, cell := range that {
		rows[i/BoardSize][i%BoardSize] = cell.Rune()
	}
	return rows
}
