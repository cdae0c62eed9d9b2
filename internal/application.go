package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one console game.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	renderer := console.NewRenderer(os.Stdout, conf.Console.ColorEnabled())
	input := console.NewInput(os.Stdin, os.Stdout)
	defer input.Close()

	var gameLoop *usecase.GameLoop
	if conf.Scoreboard.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		scoreboardRepo := repository.NewScoreboardRepository(redisStorage, conf.Scoreboard.Key)
		gameLoop = usecase.NewGameLoop(logger, input, renderer, scoreboardRepo)
	} else {
		gameLoop = usecase.NewGameLoop(logger, input, renderer, nil)
	}

	renderer.RenderBanner()
	gameLoop.ShowScoreboard(ctx)

	if _, err := gameLoop.Run(ctx); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	renderer.RenderFarewell()

	return nil
}
