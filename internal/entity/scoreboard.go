package entity

// Scoreboard tallies finished games.
type Scoreboard struct {
	XWins int
	OWins int
	Draws int
}

func (that Scoreboard) Total() int {
	return that.XWins + that.OWins + that.Draws
}
