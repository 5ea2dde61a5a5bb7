package service

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/gametree"
)

const center = 5

var (
	ErrNotBotTurn       = errors.New("it's not the bot's turn")
	ErrNoAvailableMoves = errors.New("no available moves")

	corners = [4]int{1, 3, 7, 9}
	edges   = [4]int{2, 4, 6, 8}

	// the edge across the center from each edge
	oppositeEdge = map[int]int{2: 8, 4: 6, 6: 4, 8: 2}
)

type BotService interface {
	SelectMove(node *gametree.Node) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// SelectMove - picks O's move at node. Two fixed replies to known forks on the third move
// are checked first, otherwise the child with the best win/lose chances is chosen.
func (that *botService) SelectMove(node *gametree.Node) (int, error) {
	if node.HasEnded() {
		return 0, ErrNoAvailableMoves
	}

	if node.CurrentTurn() != entity.O {
		return 0, ErrNotBotTurn
	}

	board := node.Board()

	if isTrap(board) {
		return 2, nil
	}

	if position, ok := middleTrick(board); ok {
		return position, nil
	}

	return bestChild(node), nil
}

// isTrap - O holds the center and X took two corners: answering on an edge avoids the double threat.
func isTrap(board entity.Board) bool {
	if board.Size() != 3 || board.At(center) != entity.O {
		return false
	}

	taken := 0
	for _, corner := range corners {
		if board.At(corner) == entity.X {
			taken++
		}
	}

	return taken == 2
}

// middleTrick - X holds the center and an edge while O took a corner: answer on the opposite edge.
func middleTrick(board entity.Board) (int, bool) {
	if board.Size() != 3 || board.At(center) != entity.X {
		return 0, false
	}

	hasCorner := false
	for _, corner := range corners {
		if board.At(corner) == entity.O {
			hasCorner = true
		}
	}

	if !hasCorner {
		return 0, false
	}

	for _, edge := range edges {
		if board.At(edge) == entity.X {
			return oppositeEdge[edge], true
		}
	}

	return 0, false
}

// bestChild - highest win chance, ties broken by the lower lose chance, then by the lower position.
func bestChild(node *gametree.Node) int {
	var best *gametree.Node

	for _, child := range node.AllChildren() {
		if child == nil {
			continue
		}

		child.ComputeProbabilities()

		switch {
		case best == nil:
			best = child
		case child.WinProbability() > best.WinProbability():
			best = child
		case child.WinProbability() == best.WinProbability() && child.LoseProbability() < best.LoseProbability():
			best = child
		}
	}

	return best.Position()
}
