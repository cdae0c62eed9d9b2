package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Player is one of the two competitors.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Opponent returns the player who moves after that one.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) Valid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

// ParsePlayer maps a mark ("X" or "O") back to a Player.
func ParsePlayer(mark string) (Player, error) {
	switch mark {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: player mark %q", apperror.ErrUnknownGameState, mark)
	}
}
