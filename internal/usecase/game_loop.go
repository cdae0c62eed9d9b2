package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// InputProvider supplies raw coordinates for the player to move.
// Errors wrapping apperror.ErrMalformedInput are re-prompted; any other error ends the game.
type InputProvider interface {
	NextMove(ctx context.Context, player entity.Player, board entity.Board) (row, col int, err error)
}

// Renderer shows the game to the players. It never feeds back into game logic.
type Renderer interface {
	RenderBoard(board entity.Board)
	RenderRejection(player entity.Player, err error)
	RenderOutcome(state entity.GameState)
	RenderScoreboard(scoreboard entity.Scoreboard)
}

type resultRecorder interface {
	RecordOutcome(ctx context.Context, state entity.GameState) (entity.Scoreboard, error)
	Get(ctx context.Context) (entity.Scoreboard, error)
}

type GameLoop struct {
	logger *slog.Logger

	input    InputProvider
	renderer Renderer
	recorder resultRecorder
}

// NewGameLoop builds a loop; recorder may be nil when no scoreboard is kept.
func NewGameLoop(logger *slog.Logger, input InputProvider, renderer Renderer, recorder resultRecorder) *GameLoop {
	return &GameLoop{
		logger:   logger,
		input:    input,
		renderer: renderer,
		recorder: recorder,
	}
}

// ShowScoreboard renders the totals of earlier games, if any were recorded.
func (that *GameLoop) ShowScoreboard(ctx context.Context) {
	if that.recorder == nil {
		return
	}

	scoreboard, err := that.recorder.Get(ctx)
	if err != nil {
		that.logger.Warn("failed to load scoreboard", "component", "game_loop", "error", err)
		return
	}

	if scoreboard.Total() > 0 {
		that.renderer.RenderScoreboard(scoreboard)
	}
}

// Run plays one game from an empty board to a terminal state.
// It returns the game as far as it got; an error means the game was aborted.
func (that *GameLoop) Run(ctx context.Context) (*tictactoe.Game, error) {
	game := tictactoe.NewGame(pkg.GenerateGameID())
	log := that.logger.With("component", "game_loop", "game_id", game.ID)

	log.Info("game started")

	for !game.IsFinished() {
		that.renderer.RenderBoard(game.Board)

		move, err := that.requestMove(ctx, log, game)
		if err != nil {
			log.Error("game aborted", "player", game.Turn.String(), "error", err)
			return game, err
		}

		if err = game.MakeTurn(move); err != nil {
			return game, fmt.Errorf("failed to apply move: %w", err)
		}

		log.Debug("move applied",
			"player", move.Player.String(), "row", move.Row, "col", move.Col, "state", game.State.String())
	}

	that.renderer.RenderBoard(game.Board)
	that.renderer.RenderOutcome(game.State)

	log.Info("game finished", "outcome", game.State.String(), "moves", game.Board.MarkedCount())

	that.recordOutcome(ctx, log, game.State)

	return game, nil
}

// requestMove asks the current player until a move passes validation.
func (that *GameLoop) requestMove(ctx context.Context, log *slog.Logger, game *tictactoe.Game) (entity.Move, error) {
	for {
		row, col, err := that.input.NextMove(ctx, game.Turn, game.Board)
		if err == nil {
			var move entity.Move
			if move, err = tictactoe.ValidateMove(game.Board, row, col, game.Turn); err == nil {
				return move, nil
			}
		}

		if !apperror.IsRecoverable(err) {
			if errors.Is(err, apperror.ErrIOFailure) {
				return entity.Move{}, err
			}
			return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrIOFailure, err)
		}

		log.Info("move rejected", "player", game.Turn.String(), "error", err)
		that.renderer.RenderRejection(game.Turn, err)
	}
}

func (that *GameLoop) recordOutcome(ctx context.Context, log *slog.Logger, state entity.GameState) {
	if that.recorder == nil {
		return
	}

	scoreboard, err := that.recorder.RecordOutcome(ctx, state)
	if err != nil {
		log.Error("failed to record outcome", "error", err)
		return
	}

	that.renderer.RenderScoreboard(scoreboard)
}
