package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	x = entity.MarkedBy(entity.PlayerX)
	o = entity.MarkedBy(entity.PlayerO)
	e = entity.CellEmpty
)

func TestWinCombos(t *testing.T) {
	// Then: three rows, three columns and two diagonals are enumerated
	expected := [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	require.Equal(t, expected, WinCombos)
}

func TestBuildWinCombos_LargerBoard(t *testing.T) {
	combos := buildWinCombos(4)

	require.Len(t, combos, 10)
	for _, combo := range combos {
		assert.Len(t, combo, 4)
	}
	assert.Equal(t, []int{0, 5, 10, 15}, combos[8])
	assert.Equal(t, []int{3, 6, 9, 12}, combos[9])
}

func TestHasWon(t *testing.T) {
	t.Run("Player X wins on the top row", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		assert.True(t, HasWon(board, entity.PlayerX))
		assert.False(t, HasWon(board, entity.PlayerO))
	})

	t.Run("Player O wins on a column", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			e, o, x,
			e, o, e,
		}

		assert.True(t, HasWon(board, entity.PlayerO))
		assert.False(t, HasWon(board, entity.PlayerX))
	})

	t.Run("Player X wins on the anti diagonal", func(t *testing.T) {
		board := entity.Board{
			o, o, x,
			e, x, e,
			x, e, e,
		}

		assert.True(t, HasWon(board, entity.PlayerX))
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		board := entity.NewBoard()

		assert.False(t, HasWon(board, entity.PlayerX))
		assert.False(t, HasWon(board, entity.PlayerO))
	})
}

// Every one of the 3^9 boards is checked against the eight fixed lines.
func TestHasWon_AllBoards(t *testing.T) {
	lines := [8][3][2]int{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	cells := [3]entity.Cell{e, x, o}

	total := 1
	for i := 0; i < entity.BoardSize*entity.BoardSize; i++ {
		total *= 3
	}

	for n := 0; n < total; n++ {
		var board entity.Board
		rest := n
		for i := range board {
			board[i] = cells[rest%3]
			rest /= 3
		}

		for _, player := range []entity.Player{entity.PlayerX, entity.PlayerO} {
			expected := false
			for _, line := range lines {
				owned := true
				for _, pos := range line {
					cell, err := board.Get(pos[0], pos[1])
					require.NoError(t, err)
					if cell != entity.MarkedBy(player) {
						owned = false
						break
					}
				}
				if owned {
					expected = true
					break
				}
			}

			if HasWon(board, player) != expected {
				t.Fatalf("board %v player %s: expected %v", board, player, expected)
			}
		}
	}
}
