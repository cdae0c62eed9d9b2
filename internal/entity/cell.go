package entity

// Cell is a single board position. The zero value is CellEmpty.
type Cell uint8

const CellEmpty Cell = 0

// MarkedBy returns the cell owned by player.
func MarkedBy(player Player) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Player returns the owner of the cell; ok is false for an empty cell.
func (that Cell) Player() (player Player, ok bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return Player(that), true
}

// Rune is the snapshot form of the cell: ' ', 'X' or 'O'.
func (that Cell) Rune() rune {
	switch Player(that) {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return ' '
	}
}
