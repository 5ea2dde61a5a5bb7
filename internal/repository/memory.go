package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type memoryGame struct {
	mu    sync.Mutex
	games map[string]entity.GameRecord
}

// NewMemoryGameRepository - keeps records in process memory, used when history is disabled.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.GameRecord),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.GameRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	cp := *game
	cp.Moves = append([]int{}, game.Moves...)
	that.games[game.ID] = cp

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.GameRecord, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return &entity.GameRecord{}, ErrGameNotFound
	}

	game.Moves = append([]int{}, game.Moves...)

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
