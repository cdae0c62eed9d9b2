package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type StateKind uint8

const (
	StateInProgress StateKind = iota
	StateWon
	StateDraw
)

// GameState is InProgress, Won(player) or Draw. The zero value is InProgress.
type GameState struct {
	kind   StateKind
	winner Player
}

func InProgress() GameState {
	return GameState{kind: StateInProgress}
}

func Won(player Player) GameState {
	return GameState{kind: StateWon, winner: player}
}

func Draw() GameState {
	return GameState{kind: StateDraw}
}

func (that GameState) Kind() StateKind {
	return that.kind
}

// Winner returns the winning player; ok is false unless the state is Won.
func (that GameState) Winner() (winner Player, ok bool) {
	if that.kind != StateWon {
		return 0, false
	}
	return that.winner, true
}

// IsTerminal reports whether no more moves may be applied.
func (that GameState) IsTerminal() bool {
	return that.kind == StateWon || that.kind == StateDraw
}

// Outcome returns the line reported at the end of a game.
func (that GameState) Outcome() (string, error) {
	switch that.kind {
	case StateInProgress:
		return "Game in progress", nil
	case StateWon:
		return fmt.Sprintf("Player %s wins!", that.winner), nil
	case StateDraw:
		return "It's a draw!", nil
	default:
		return "", fmt.Errorf("%w: kind %d", apperror.ErrUnknownGameState, that.kind)
	}
}

func (that GameState) String() string {
	outcome, err := that.Outcome()
	if err != nil {
		return err.Error()
	}
	return outcome
}
