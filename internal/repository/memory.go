package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-plus/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryGameRepository keeps games in process. Entries are stored encoded so callers never
// share the board with the store.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryGameRepository(ttl time.Duration) *MemoryGameRepository {
	return &MemoryGameRepository{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (that *MemoryGameRepository) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	entry := memoryEntry{data: gameJSON}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.games[game.ID] = entry
	that.mu.Unlock()

	return nil
}

func (that *MemoryGameRepository) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	entry, ok := that.games[id]
	that.mu.RUnlock()

	if !ok || that.isExpired(entry) {
		return nil, apperror.ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(entry.data, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *MemoryGameRepository) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok || that.isExpired(entry) {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

// Sweep - drops expired games and returns how many were removed.
func (that *MemoryGameRepository) Sweep() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	removed := 0
	for id, entry := range that.games {
		if that.isExpired(entry) {
			delete(that.games, id)
			removed++
		}
	}

	return removed
}

// RunSweeper - sweeps every interval until ctx is done.
func (that *MemoryGameRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.Sweep()
		}
	}
}

func (that *MemoryGameRepository) isExpired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
