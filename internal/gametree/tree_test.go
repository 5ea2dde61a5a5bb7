package gametree

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyMoves(t *testing.T, tree *Tree, moves ...int) {
	t.Helper()

	for _, position := range moves {
		require.NoError(t, tree.ApplyMove(position, tree.Cursor().CurrentTurn()))
	}
}

func TestTree_New(t *testing.T) {
	tree := New()

	assert.Same(t, tree.Root(), tree.Cursor())
	assert.Nil(t, tree.Root().Parent())
	assert.Equal(t, 0, tree.Cursor().Depth())
	assert.Empty(t, tree.History())
}

func TestTree_ApplyMove(t *testing.T) {
	t.Run("Player takes the center", func(t *testing.T) {
		// Given: a new tree
		tree := New()

		// When: X plays the center
		err := tree.ApplyMove(5, entity.X)

		// Then: the cursor holds the new position
		require.NoError(t, err)
		assert.Equal(t, entity.X, tree.Cursor().Board().At(5))
		assert.Equal(t, 1, tree.Cursor().Board().Size())
		assert.Same(t, tree.Root(), tree.Cursor().Parent())
		assert.Equal(t, []int{5}, tree.History())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		tree := New()

		err := tree.ApplyMove(1, entity.O)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Same(t, tree.Root(), tree.Cursor())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		tree := New()
		applyMoves(t, tree, 5)
		cursor := tree.Cursor()

		err := tree.ApplyMove(5, entity.O)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Same(t, cursor, tree.Cursor())
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		tree := New()

		err := tree.ApplyMove(0, entity.X)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on move after game finished", func(t *testing.T) {
		// Given: X completed the top row
		tree := New()
		applyMoves(t, tree, 1, 4, 2, 5, 3)
		require.True(t, tree.Cursor().HasEnded())

		// When: O tries to move
		err := tree.ApplyMove(6, entity.O)

		// Then: ErrGameFinished should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Replaying a move reuses the explored node", func(t *testing.T) {
		tree := New()
		applyMoves(t, tree, 5, 1)
		explored := tree.Cursor()
		require.True(t, tree.Rewind())

		applyMoves(t, tree, 5, 1)

		assert.Same(t, explored, tree.Cursor())
	})
}

func TestTree_Rewind(t *testing.T) {
	t.Run("Returns false at the root", func(t *testing.T) {
		tree := New()

		assert.False(t, tree.Rewind())
		assert.Same(t, tree.Root(), tree.Cursor())
	})

	t.Run("Returns false one move deep", func(t *testing.T) {
		tree := New()
		applyMoves(t, tree, 5)
		cursor := tree.Cursor()

		assert.False(t, tree.Rewind())
		assert.Same(t, cursor, tree.Cursor())
	})

	t.Run("Moves two levels up", func(t *testing.T) {
		// Given: four moves have been played
		tree := New()
		applyMoves(t, tree, 5, 1, 9, 3)

		// When: rewinding once
		ok := tree.Rewind()

		// Then: the cursor is back after the first round
		require.True(t, ok)
		assert.Equal(t, 2, tree.Cursor().Depth())
		assert.Equal(t, []int{5, 1}, tree.History())

		// And: rewinding again returns to the root
		require.True(t, tree.Rewind())
		assert.Same(t, tree.Root(), tree.Cursor())
	})

	t.Run("Odd depth stops one move deep", func(t *testing.T) {
		tree := New()
		applyMoves(t, tree, 5, 1, 9)

		require.True(t, tree.Rewind())

		assert.Equal(t, []int{5}, tree.History())
		assert.False(t, tree.Rewind())
	})
}
