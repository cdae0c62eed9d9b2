package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardKey = "tictactoe:scoreboard:test"

func TestScoreboardRepository_RecordOutcome(t *testing.T) {
	t.Run("RecordOutcome_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage, scoreboardKey)

		// Given: two X wins and one draw recorded
		_, err := scoreboardRepo.RecordOutcome(ctx, entity.Won(entity.PlayerX))
		require.NoError(t, err)
		_, err = scoreboardRepo.RecordOutcome(ctx, entity.Draw())
		require.NoError(t, err)

		// When: another X win is recorded
		scoreboard, err := scoreboardRepo.RecordOutcome(ctx, entity.Won(entity.PlayerX))

		// Then: the returned totals include every game
		require.NoError(t, err)
		assert.Equal(t, entity.Scoreboard{XWins: 2, OWins: 0, Draws: 1}, scoreboard)
	})

	t.Run("RecordOutcome_InProgress", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage, scoreboardKey)

		// When: a game that has not finished is recorded
		_, err := scoreboardRepo.RecordOutcome(ctx, entity.InProgress())

		// Then: it is refused and nothing is stored
		require.ErrorIs(t, err, apperror.ErrUnknownGameState)

		scoreboard, err := scoreboardRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, scoreboard.Total())
	})
}

func TestScoreboardRepository_Get(t *testing.T) {
	t.Run("Get_Empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage, scoreboardKey)

		// When: nothing was recorded
		scoreboard, err := scoreboardRepo.Get(ctx)

		// Then: an empty scoreboard is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Scoreboard{}, scoreboard)
	})

	t.Run("Get_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage, scoreboardKey)

		// Given: a field that is not a known outcome
		require.NoError(t, st.Storage.HSet(ctx, scoreboardKey, "-", "4").Err())

		// When: reading the scoreboard
		_, err := scoreboardRepo.Get(ctx)

		// Then: the bad field is reported
		require.ErrorIs(t, err, apperror.ErrUnknownGameState)
	})
}

func TestParseScoreboard(t *testing.T) {
	scoreboard, err := parseScoreboard(map[string]string{"X": "5", "O": "3", "draw": "1"})

	require.NoError(t, err)
	assert.Equal(t, entity.Scoreboard{XWins: 5, OWins: 3, Draws: 1}, scoreboard)

	_, err = parseScoreboard(map[string]string{"X": "many"})
	require.Error(t, err)
}
