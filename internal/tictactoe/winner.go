package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// WinCombos holds the cell indexes of every line: rows, columns, then both diagonals.
var WinCombos = buildWinCombos(entity.BoardSize)

func buildWinCombos(size int) [][]int {
	combos := make([][]int, 0, 2*size+2)

	for row := 0; row < size; row++ {
		combo := make([]int, 0, size)
		for col := 0; col < size; col++ {
			combo = append(combo, row*size+col)
		}
		combos = append(combos, combo)
	}

	for col := 0; col < size; col++ {
		combo := make([]int, 0, size)
		for row := 0; row < size; row++ {
			combo = append(combo, row*size+col)
		}
		combos = append(combos, combo)
	}

	mainDiagonal := make([]int, 0, size)
	antiDiagonal := make([]int, 0, size)
	for i := 0; i < size; i++ {
		mainDiagonal = append(mainDiagonal, i*size+i)
		antiDiagonal = append(antiDiagonal, i*size+(size-1-i))
	}

	return append(combos, mainDiagonal, antiDiagonal)
}

// HasWon reports whether player owns every cell of at least one line.
func HasWon(board entity.Board, player entity.Player) bool {
	mark := entity.MarkedBy(player)

	for _, combo := range WinCombos {
		if lineOwnedBy(board, combo, mark) {
			return true
		}
	}

	return false
}

func lineOwnedBy(board entity.Board, combo []int, mark entity.Cell) bool {
	for _, idx := range combo {
		if board[idx] != mark {
			return false
		}
	}
	return true
}
