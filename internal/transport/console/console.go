package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/gametree"
)

var errInputClosed = errors.New("input closed")

type gameManager interface {
	Cursor() *gametree.Node
	PlayerTurn(ctx context.Context, position int) (*gametree.Node, error)
	BotTurn(ctx context.Context) (int, error)
	Undo(ctx context.Context) error
	Probabilities() (float64, float64, float64)
}

type phase uint8

const (
	playerTurn phase = iota
	checkEnd
	botTurn
	done
)

// Console plays one game over line-oriented input and output.
type Console struct {
	logger   *slog.Logger
	game     gameManager
	in       io.Reader
	out      io.Writer
	handlers map[phase]func(ctx context.Context) (phase, error)

	lines        <-chan string
	botMovedLast bool
}

func New(logger *slog.Logger, game gameManager, in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger:   logger.With("component", "console"),
		game:     game,
		in:       in,
		out:      out,
		handlers: make(map[phase]func(context.Context) (phase, error)),
	}

	console.handlers[playerTurn] = console.handlePlayerTurn
	console.handlers[checkEnd] = console.handleCheckEnd
	console.handlers[botTurn] = console.handleBotTurn

	return console
}

// Run - plays until the game ends, the input is exhausted or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.lines = readLines(ctx, that.in)

	that.print(description + labelBoard + StartingBoard())

	state := playerTurn
	for state != done {
		next, err := that.handlers[state](ctx)
		switch {
		case errors.Is(err, errInputClosed):
			that.logger.Info("input closed, leaving the game")
			return nil
		case errors.Is(err, context.Canceled):
			that.logger.Info("game interrupted")
			return nil
		case err != nil:
			return fmt.Errorf("game failed: %w", err)
		}

		state = next
	}

	return nil
}

func (that *Console) handlePlayerTurn(ctx context.Context) (phase, error) {
	that.print(promptMove)

	line, err := that.readLine(ctx)
	if err != nil {
		return done, err
	}

	position, err := parsePosition(line)
	if err != nil {
		that.print("\n" + describe(err) + "\n")
		return playerTurn, nil
	}

	if position == 0 {
		that.undo(ctx)
		return playerTurn, nil
	}

	if _, err = that.game.PlayerTurn(ctx, position); err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.print("\n" + describe(err) + "\n")
			return playerTurn, nil
		}

		return done, fmt.Errorf("failed make turn: %w", err)
	}

	that.botMovedLast = false

	return checkEnd, nil
}

func (that *Console) handleCheckEnd(_ context.Context) (phase, error) {
	cursor := that.game.Cursor()

	if !cursor.HasEnded() {
		if cursor.CurrentTurn() == entity.X {
			return playerTurn, nil
		}

		return botTurn, nil
	}

	if !that.botMovedLast {
		that.print(RenderBoard(cursor.Cells()))
	}

	if winner := cursor.Winner(); winner == entity.Empty {
		that.print(drawMessage)
	} else {
		that.print(fmt.Sprintf(winMessage, winner))
	}

	that.print(endMessage)

	return done, nil
}

func (that *Console) handleBotTurn(ctx context.Context) (phase, error) {
	if _, err := that.game.BotTurn(ctx); err != nil {
		return done, fmt.Errorf("failed bot turn: %w", err)
	}

	that.botMovedLast = true
	that.printCursor()

	return checkEnd, nil
}

func (that *Console) undo(ctx context.Context) {
	if err := that.game.Undo(ctx); err != nil {
		that.print("\n" + describe(err) + "\n")
	}

	if that.game.Cursor().Depth() == 0 {
		that.print(StartingBoard())
		return
	}

	that.printCursor()
}

// printCursor - the current board followed by the bot's chances.
func (that *Console) printCursor() {
	that.print(RenderBoard(that.game.Cursor().Cells()))

	win, lose, draw := that.game.Probabilities()
	that.print(fmt.Sprintf(probability, "winning", RoundHalfUp(win)))
	that.print(fmt.Sprintf(probability, "losing", RoundHalfUp(lose)))
	that.print(fmt.Sprintf(probability, "drawing", RoundHalfUp(draw)))
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", errInputClosed
		}

		return line, nil
	}
}

func parsePosition(line string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	return position, nil
}

// readLines - feeds lines from in until EOF or ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
