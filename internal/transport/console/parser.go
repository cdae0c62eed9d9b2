package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// ParseMove reads "row col": exactly two non-negative integers separated by whitespace.
// Range checks are left to move validation.
func ParseMove(line string) (row, col int, err error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 numbers, got %d tokens", apperror.ErrMalformedInput, len(tokens))
	}

	if row, err = parseCoordinate(tokens[0]); err != nil {
		return 0, 0, err
	}

	if col, err = parseCoordinate(tokens[1]); err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

// parseCoordinate saturates numbers that do not fit an int at math.MaxInt,
// which move validation then rejects as out of range.
func parseCoordinate(token string) (int, error) {
	value, err := strconv.ParseUint(token, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative number", apperror.ErrMalformedInput, token)
	}

	if value > math.MaxInt {
		return math.MaxInt, nil
	}

	return int(value), nil
}
