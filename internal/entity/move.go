package entity

// Move is a validated placement. It targeted an empty in-range cell when it was validated.
type Move struct {
	Row    int
	Col    int
	Player Player
}
