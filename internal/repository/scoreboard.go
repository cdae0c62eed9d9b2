package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const drawField = "draw"

// ScoreboardRepository keeps outcome counts of finished games. It never stores a board.
type ScoreboardRepository interface {
	RecordOutcome(ctx context.Context, state entity.GameState) (entity.Scoreboard, error)
	Get(ctx context.Context) (entity.Scoreboard, error)
}

type dbScoreboard struct {
	client *redis.Client
	key    string
}

func NewScoreboardRepository(client *redis.Client, key string) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
		key:    key,
	}
}

// RecordOutcome increments the tally for state and returns the updated totals.
func (that *dbScoreboard) RecordOutcome(ctx context.Context, state entity.GameState) (entity.Scoreboard, error) {
	field, err := outcomeField(state)
	if err != nil {
		return entity.Scoreboard{}, err
	}

	var totals *redis.MapStringStringCmd
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, that.key, field, 1)
		totals = pipe.HGetAll(ctx, that.key)
		return nil
	})
	if err != nil {
		return entity.Scoreboard{}, fmt.Errorf("failed to record outcome: %w", err)
	}

	return parseScoreboard(totals.Val())
}

func (that *dbScoreboard) Get(ctx context.Context) (entity.Scoreboard, error) {
	totals, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return entity.Scoreboard{}, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return parseScoreboard(totals)
}

func outcomeField(state entity.GameState) (string, error) {
	switch state.Kind() {
	case entity.StateWon:
		winner, _ := state.Winner()
		return winner.String(), nil
	case entity.StateDraw:
		return drawField, nil
	case entity.StateInProgress:
		return "", fmt.Errorf("%w: game is still in progress", apperror.ErrUnknownGameState)
	default:
		return "", fmt.Errorf("%w: kind %d", apperror.ErrUnknownGameState, state.Kind())
	}
}

func parseScoreboard(totals map[string]string) (entity.Scoreboard, error) {
	var scoreboard entity.Scoreboard

	for field, value := range totals {
		count, err := strconv.Atoi(value)
		if err != nil {
			return entity.Scoreboard{}, fmt.Errorf("failed to parse %s count: %w", field, err)
		}

		if field == drawField {
			scoreboard.Draws = count
			continue
		}

		player, err := entity.ParsePlayer(field)
		if err != nil {
			return entity.Scoreboard{}, fmt.Errorf("failed to parse scoreboard: %w", err)
		}

		switch player {
		case entity.PlayerX:
			scoreboard.XWins = count
		case entity.PlayerO:
			scoreboard.OWins = count
		}
	}

	return scoreboard, nil
}
