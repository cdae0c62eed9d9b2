package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ValidateMove checks raw coordinates against a board snapshot. It never mutates the board.
func ValidateMove(board entity.Board, row, col int, player entity.Player) (entity.Move, error) {
	cell, err := board.Get(row, col)
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid move: %w", err)
	}

	if !cell.IsEmpty() {
		return entity.Move{}, fmt.Errorf("invalid move: %w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return entity.Move{Row: row, Col: col, Player: player}, nil
}
