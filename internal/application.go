package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

// RunApp - plays one console game on in/out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close game storage", "error", closeErr)
		}
	}()

	gameManager := usecase.NewGameManager(logger, service.NewBotService(), gameRepo)
	log.Info("starting game", "game_id", gameManager.GameID(), "history", conf.History.Enabled)

	if err = console.New(logger, gameManager, in, out).Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// newGameRepository - Redis when history is enabled, process memory otherwise.
func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if !conf.History.Enabled {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage, conf.History.TTL), redisStorage.Close, nil
}
