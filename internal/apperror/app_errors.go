package apperror

import "errors"

var (
	ErrMalformedInput   = errors.New("malformed move input")
	ErrOutOfRange       = errors.New("coordinates out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrIOFailure        = errors.New("failed to read move input")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrUnknownGameState = errors.New("unknown game state")
)

// IsRecoverable reports whether err is a rejected move that the same player may retry.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrCellOccupied)
}
