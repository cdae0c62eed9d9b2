package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Evaluate recomputes the game state after lastPlayer moved.
// A completed line wins even when the same move fills the board.
func Evaluate(board entity.Board, lastPlayer entity.Player) entity.GameState {
	if HasWon(board, lastPlayer) {
		return entity.Won(lastPlayer)
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

// Transition returns the state after lastPlayer's move and the player to move next.
// The turn only flips while the game is in progress.
func Transition(board entity.Board, lastPlayer entity.Player) (entity.GameState, entity.Player, error) {
	state := Evaluate(board, lastPlayer)

	switch state.Kind() {
	case entity.StateInProgress:
		return state, lastPlayer.Opponent(), nil
	case entity.StateWon, entity.StateDraw:
		return state, lastPlayer, nil
	default:
		return state, lastPlayer, fmt.Errorf("%w: kind %d", apperror.ErrUnknownGameState, state.Kind())
	}
}
