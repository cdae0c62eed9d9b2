package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderBoard(t *testing.T) {
	// Given: a board with X in the corner and O in the centre
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	board := entity.NewBoard()
	require.NoError(t, board.Set(0, 0, entity.PlayerX))
	require.NoError(t, board.Set(1, 1, entity.PlayerO))

	// When: the board is rendered
	renderer.RenderBoard(board)

	// Then: the grid is drawn with row and column headers
	expected := "\n" +
		"    0   1   2\n" +
		"0   X │   │   \n" +
		"   ───┼───┼───\n" +
		"1     │ O │   \n" +
		"   ───┼───┼───\n" +
		"2     │   │   \n" +
		"\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderer_RenderRejection(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{fmt.Errorf("%w: bad", apperror.ErrMalformedInput), "Invalid input. Please enter two numbers separated by a space.\n"},
		{fmt.Errorf("%w: row 3", apperror.ErrOutOfRange), "Coordinates out of range. Use 0-2 for both row and column.\n"},
		{fmt.Errorf("%w: row 1", apperror.ErrCellOccupied), "That cell is already occupied. Choose another.\n"},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		renderer := NewRenderer(&out, false)

		renderer.RenderRejection(entity.PlayerX, tc.err)

		assert.Equal(t, tc.expected, out.String())
	}
}

func TestRenderer_RenderOutcome(t *testing.T) {
	t.Run("Win", func(t *testing.T) {
		var out bytes.Buffer

		NewRenderer(&out, false).RenderOutcome(entity.Won(entity.PlayerO))

		assert.Equal(t, "Player O wins!\n", out.String())
	})

	t.Run("Draw", func(t *testing.T) {
		var out bytes.Buffer

		NewRenderer(&out, false).RenderOutcome(entity.Draw())

		assert.Equal(t, "It's a draw!\n", out.String())
	})
}

func TestRenderer_RenderScoreboard(t *testing.T) {
	var out bytes.Buffer

	NewRenderer(&out, false).RenderScoreboard(entity.Scoreboard{XWins: 3, OWins: 1, Draws: 2})

	assert.Equal(t, "Scoreboard after 6 games: X 3, O 1, draws 2\n", out.String())
}
