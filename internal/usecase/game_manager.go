package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-plus/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
	"github.com/rocketscienceinc/tictactoe-plus/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager loads a game, applies one engine operation and stores the result. Every
// mutation runs under a single lock so the engine never sees two writers.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

// CreateGame - starts a new game under a fresh ID.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(that.newID())

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// SelectPiece - selects a piece for the side to move. A rejected selection returns the
// unchanged game together with the rejection.
func (that *GameManager) SelectPiece(ctx context.Context, id string, side entity.Side, rank int) (*entity.Game, error) {
	return that.mutate(ctx, id, "select", func(game *entity.Game) (*entity.Game, error) {
		if err := tictactoe.Select(game, side, rank); err != nil {
			return nil, err
		}
		return game, nil
	})
}

// PlacePiece - places the selected piece and records the new outcome.
func (that *GameManager) PlacePiece(ctx context.Context, id string, row, col int) (*entity.Game, error) {
	game, err := that.mutate(ctx, id, "place", func(game *entity.Game) (*entity.Game, error) {
		if err := tictactoe.AttemptPlace(game, row, col); err != nil {
			return nil, err
		}
		return game, nil
	})
	if err == nil && game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.String())
	}

	return game, err
}

// RestartGame - replaces the game with a fresh one under the same ID.
func (that *GameManager) RestartGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.mutate(ctx, id, "restart", func(game *entity.Game) (*entity.Game, error) {
		return tictactoe.Restart(game), nil
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) mutate(
	ctx context.Context,
	id, operation string,
	apply func(game *entity.Game) (*entity.Game, error),
) (*entity.Game, error) {
	log := that.logger.With("method", operation, "gameID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := apply(game)
	if err != nil {
		if apperror.IsRejection(err) {
			log.Debug("action ignored", "reason", err)
			return game, err
		}
		return nil, fmt.Errorf("failed to %s: %w", operation, err)
	}

	if err = that.updateGame(ctx, updated); err != nil {
		return nil, err
	}

	log.Debug("action applied", "turn", updated.Turn, "status", updated.Outcome.Status)

	return updated, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
