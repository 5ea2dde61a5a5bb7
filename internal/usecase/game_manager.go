package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/gametree"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
}

type botService interface {
	SelectMove(node *gametree.Node) (int, error)
}

// GameManager drives one game between the human (X) and the bot (O) and records its history.
type GameManager struct {
	logger   *slog.Logger
	bot      botService
	gameRepo gameRepo

	tree   *gametree.Tree
	record *entity.GameRecord
}

func NewGameManager(logger *slog.Logger, bot botService, gameRepo gameRepo) *GameManager {
	gameID := uuid.NewString()

	return &GameManager{
		logger:   logger.With("component", "game_manager", "game_id", gameID),
		bot:      bot,
		gameRepo: gameRepo,

		tree:   gametree.New(),
		record: entity.NewGameRecord(gameID),
	}
}

func (that *GameManager) GameID() string {
	return that.record.ID
}

func (that *GameManager) Cursor() *gametree.Node {
	return that.tree.Cursor()
}

// PlayerTurn - applies the human move at position.
func (that *GameManager) PlayerTurn(ctx context.Context, position int) (*gametree.Node, error) {
	if err := that.tree.ApplyMove(position, entity.X); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	that.logger.Debug("player moved", "position", position)
	that.saveRecord(ctx)

	return that.tree.Cursor(), nil
}

// BotTurn - lets the bot choose and apply its move, returns the chosen position.
func (that *GameManager) BotTurn(ctx context.Context) (int, error) {
	position, err := that.bot.SelectMove(that.tree.Cursor())
	if err != nil {
		return 0, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = that.tree.ApplyMove(position, entity.O); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "position", position)
	that.saveRecord(ctx)

	return position, nil
}

// Undo - takes back the last player and bot moves.
func (that *GameManager) Undo(ctx context.Context) error {
	if !that.tree.Rewind() {
		return apperror.ErrCannotUndo
	}

	that.logger.Debug("moves undone", "depth", that.tree.Cursor().Depth())
	that.saveRecord(ctx)

	return nil
}

// Probabilities - bot's chances of winning, losing and drawing from the current position.
func (that *GameManager) Probabilities() (float64, float64, float64) {
	cursor := that.tree.Cursor()
	cursor.ComputeProbabilities()

	return cursor.WinProbability(), cursor.LoseProbability(), cursor.DrawProbability()
}

// Record - the stored history of this game.
func (that *GameManager) Record(ctx context.Context) (*entity.GameRecord, error) {
	record, err := that.gameRepo.GetByID(ctx, that.record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	return record, nil
}

// saveRecord - history is best effort, a storage failure never interrupts the game.
func (that *GameManager) saveRecord(ctx context.Context) {
	log := that.logger.With("method", "saveRecord")

	that.record.Update(that.tree.History(), that.tree.Cursor().Board())

	if err := that.gameRepo.CreateOrUpdate(ctx, that.record); err != nil {
		log.Error("failed to save game record", "error", err)
		return
	}

	if that.record.IsFinished() {
		log.Info("game finished", "winner", that.record.Winner, "moves", len(that.record.Moves))
	}
}
