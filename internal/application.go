package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-plus/internal/config"
	"github.com/rocketscienceinc/tictactoe-plus/internal/repository"
	"github.com/rocketscienceinc/tictactoe-plus/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-plus/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-plus/transport/rest"
	"github.com/rocketscienceinc/tictactoe-plus/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	gameRepo, closeRepo, err := newGameRepository(ctx, group, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameUseCase := usecase.NewGameManager(logger, gameRepo)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameUseCase).Start(ctx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	err = group.Wait()
	log.Info("Application stopped")

	return err
}

// newGameRepository - opens the configured session store. The returned func releases it.
func newGameRepository(
	ctx context.Context,
	group *errgroup.Group,
	log *slog.Logger,
	conf *config.Config,
) (repository.GameRepository, func(), error) {
	if conf.Storage == config.StorageMemory {
		memoryRepo := repository.NewMemoryGameRepository(conf.SessionTTL)

		if conf.SessionTTL > 0 && conf.SweepInterval > 0 {
			group.Go(func() error {
				memoryRepo.RunSweeper(ctx, conf.SweepInterval)
				return nil
			})
		}

		log.Info("Using in-memory game storage", "ttl", conf.SessionTTL)

		return memoryRepo, func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Using redis game storage", "addr", redisAddrString, "ttl", conf.SessionTTL)

	closeFn := func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	return repository.NewGameRepository(redisStorage, conf.SessionTTL), closeFn, nil
}
