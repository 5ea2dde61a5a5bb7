package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the common cause of every rejected move.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrInvalidCell  = fmt.Errorf("%w: position must be between 1 and 9", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrCannotUndo   = fmt.Errorf("%w: there is no move to undo", ErrInvalidMove)
)

// ErrInvalidInput - input that is not a well-formed position.
var ErrInvalidInput = errors.New("please enter a number from 0 to 9")
