package console

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		return "Please enter a number from 0 to 9."
	case errors.Is(err, apperror.ErrInvalidCell):
		return "Positions go from 1 to 9."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That position is already taken."
	case errors.Is(err, apperror.ErrCannotUndo):
		return "There is nothing to undo."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is already over."
	default:
		return "That move is not allowed."
	}
}
