package pkg

import "github.com/google/uuid"

// GenerateGameID returns a random identifier used to correlate a game's log lines and records.
func GenerateGameID() string {
	return uuid.NewString()
}
