package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/gametree"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedBot answers with a fixed list of positions.
type scriptedBot struct {
	moves []int
}

func (that *scriptedBot) SelectMove(_ *gametree.Node) (int, error) {
	position := that.moves[0]
	that.moves = that.moves[1:]

	return position, nil
}

func newConsole(t *testing.T, input string, bot *scriptedBot) (*Console, *usecase.GameManager, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, bot, repository.NewMemoryGameRepository())
	out := &bytes.Buffer{}

	return New(logger, manager, strings.NewReader(input), out), manager, out
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Player wins", func(t *testing.T) {
		// Given: a bot scripted to leave the left column open
		console, manager, out := newConsole(t, "1\n4\n7\n", &scriptedBot{moves: []int{2, 3}})

		// When: the player fills the left column
		err := console.Run(ctx)

		// Then: the game ends with X as the winner
		require.NoError(t, err)
		assert.True(t, manager.Cursor().HasEnded())
		assert.Contains(t, out.String(), StartingBoard())
		assert.Contains(t, out.String(), "|X|O|O|\n|X| | |\n|X| | |\n")
		assert.True(t, strings.HasSuffix(out.String(), "X wins!\n"+endMessage))
	})

	t.Run("Bot wins", func(t *testing.T) {
		// Given: a bot that completes the anti-diagonal
		console, _, out := newConsole(t, "1\n2\n4\n", &scriptedBot{moves: []int{5, 3, 7}})

		// When: the player ignores the threat
		err := console.Run(ctx)

		// Then: the board was printed once after the bot's move and O won
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out.String(), "|X|X|O|\n|X|O| |\n|O| | |\n"))
		assert.True(t, strings.HasSuffix(out.String(), "O wins!\n"+endMessage))
	})

	t.Run("Draw", func(t *testing.T) {
		console, _, out := newConsole(t, "1\n3\n4\n8\n9\n", &scriptedBot{moves: []int{2, 5, 6, 7}})

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "|X|O|X|\n|X|O|O|\n|O|X|X|\n")
		assert.True(t, strings.HasSuffix(out.String(), drawMessage+endMessage))
	})

	t.Run("Bot moves are followed by its chances", func(t *testing.T) {
		console, _, out := newConsole(t, "5\n", &scriptedBot{moves: []int{1}})

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "|O| | |\n| |X| |\n| | | |\n")
		assert.Contains(t, out.String(), "Bot's chance of winning: ")
		assert.Contains(t, out.String(), "Bot's chance of losing: ")
		assert.Contains(t, out.String(), "Bot's chance of drawing: ")
	})

	t.Run("Malformed input re-prompts", func(t *testing.T) {
		// Given: input that is not a number
		console, manager, out := newConsole(t, "abc\n\n", &scriptedBot{})

		// When: running until input ends
		err := console.Run(ctx)

		// Then: the error is reported and nothing was played
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number from 0 to 9."))
		assert.Equal(t, 3, strings.Count(out.String(), promptMove))
		assert.Equal(t, 0, manager.Cursor().Depth())
	})

	t.Run("Invalid moves re-prompt", func(t *testing.T) {
		console, manager, out := newConsole(t, "5\n5\n10\n-3\n", &scriptedBot{moves: []int{1}})

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "That position is already taken.")
		assert.Equal(t, 2, strings.Count(out.String(), "Positions go from 1 to 9."))
		assert.Equal(t, 2, manager.Cursor().Depth())
	})

	t.Run("Undo at the start", func(t *testing.T) {
		console, _, out := newConsole(t, "0\n", &scriptedBot{})

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "There is nothing to undo.\n"+StartingBoard())
	})

	t.Run("Undo takes back a round", func(t *testing.T) {
		// Given: two rounds played
		console, manager, out := newConsole(t, "5\n9\n0\n", &scriptedBot{moves: []int{1, 3}})

		// When: the player undoes
		err := console.Run(ctx)

		// Then: the first round's position is shown again
		require.NoError(t, err)
		assert.Equal(t, []int{5, 1}, positions(manager.Cursor()))
		assert.Equal(t, 2, strings.Count(out.String(), "|O| | |\n| |X| |\n| | | |\n"))
	})

	t.Run("Canceled context stops the game", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		reader, writer := io.Pipe()
		defer writer.Close()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		manager := usecase.NewGameManager(logger, service.NewBotService(), repository.NewMemoryGameRepository())
		console := New(logger, manager, reader, &bytes.Buffer{})

		err := console.Run(canceled)

		require.NoError(t, err)
	})
}

func positions(node *gametree.Node) []int {
	var moves []int
	for ; node.Parent() != nil; node = node.Parent() {
		moves = append([]int{node.Position()}, moves...)
	}

	return moves
}
