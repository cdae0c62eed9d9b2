package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Game bundles the board, the player to move and the game state.
// It has a single owner for its whole lifetime.
type Game struct {
	ID    string
	Board entity.Board
	Turn  entity.Player
	State entity.GameState
}

// NewGame returns an empty board with X to move.
func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		Board: entity.NewBoard(),
		Turn:  entity.PlayerX,
		State: entity.InProgress(),
	}
}

func (that *Game) IsFinished() bool {
	return that.State.IsTerminal()
}

// MakeTurn applies a validated move and recomputes the state.
// On error neither the board nor the turn changes.
func (that *Game) MakeTurn(move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if move.Player != that.Turn {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	board := that.Board
	if err := board.Set(move.Row, move.Col, move.Player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	state, next, err := Transition(board, move.Player)
	if err != nil {
		return fmt.Errorf("failed to update game state: %w", err)
	}

	that.Board = board
	that.State = state
	that.Turn = next

	return nil
}

// Play validates raw coordinates for the player to move and applies them.
func (that *Game) Play(row, col int) (entity.Move, error) {
	if that.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	move, err := ValidateMove(that.Board, row, col, that.Turn)
	if err != nil {
		return entity.Move{}, err
	}

	if err = that.MakeTurn(move); err != nil {
		return entity.Move{}, err
	}

	return move, nil
}
