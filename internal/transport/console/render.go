package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	description = "Tic-tac-toe against the computer. You are X and move first.\n" +
		"Pick a cell by its number, or enter 0 to take back your last move.\n"
	labelBoard  = "The cells are numbered like this:\n"
	promptMove  = "\nEnter a position (1-9), or 0 to undo: "
	probability = "Bot's chance of %s: %s\n"
	drawMessage = "It's a draw!\n"
	winMessage  = "%s wins!\n"
	endMessage  = "Thanks for playing.\n"
)

// RenderBoard - three rows of "|a|b|c|".
func RenderBoard(cells [entity.BoardSize]entity.Cell) string {
	var sb strings.Builder

	for i, cell := range cells {
		sb.WriteString("|" + cell.String())
		if (i+1)%3 == 0 {
			sb.WriteString("|\n")
		}
	}

	return sb.String()
}

// StartingBoard - the board labeled with cell numbers.
func StartingBoard() string {
	var sb strings.Builder

	for i := 1; i <= entity.BoardSize; i++ {
		sb.WriteString("|" + strconv.Itoa(i))
		if i%3 == 0 {
			sb.WriteString("|\n")
		}
	}

	return sb.String()
}

// RoundHalfUp formats value with two decimals, rounding its shortest decimal form half up.
func RoundHalfUp(value float64) string {
	digits := strconv.FormatFloat(value, 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	frac += "000"

	cents, err := strconv.Atoi(whole + frac[:2])
	if err != nil {
		return fmt.Sprintf("%.2f", value)
	}

	if frac[2] >= '5' {
		cents++
	}

	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
