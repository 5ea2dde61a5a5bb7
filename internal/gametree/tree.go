package gametree

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Tree owns the root position and a cursor on the position actually being played.
type Tree struct {
	root   *Node
	cursor *Node
}

func New() *Tree {
	root := newNode(entity.Board{}, nil, 0)

	return &Tree{
		root:   root,
		cursor: root,
	}
}

func (that *Tree) Root() *Node {
	return that.root
}

func (that *Tree) Cursor() *Node {
	return that.cursor
}

// ApplyMove - validates the move at the cursor and advances the cursor to the resulting child.
func (that *Tree) ApplyMove(position int, mark entity.Cell) error {
	if that.cursor.HasEnded() {
		return apperror.ErrGameFinished
	}

	if mark != that.cursor.CurrentTurn() {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.cursor.CurrentTurn())
	}

	child, err := that.cursor.ChildAt(position)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.cursor = child

	return nil
}

// Rewind moves the cursor back one full player and bot round.
// It is a no-op returning false when fewer than two moves have been played.
func (that *Tree) Rewind() bool {
	if that.cursor.parent == nil || that.cursor.parent.parent == nil {
		return false
	}

	that.cursor = that.cursor.parent.parent

	return true
}

// History - positions played from the root to the cursor.
func (that *Tree) History() []int {
	moves := make([]int, that.cursor.Depth())
	for node := that.cursor; node.parent != nil; node = node.parent {
		moves[node.Depth()-1] = node.position
	}

	return moves
}
