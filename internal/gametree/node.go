package gametree

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Node is one reachable game position. Children are built lazily and owned by the node;
// parent is a back reference used only to walk toward the root.
type Node struct {
	board    entity.Board
	position int
	parent   *Node
	children [entity.BoardSize]*Node

	winProbability  float64
	loseProbability float64
	drawProbability float64
}

func newNode(board entity.Board, parent *Node, position int) *Node {
	return &Node{
		board:    board,
		parent:   parent,
		position: position,
	}
}

func (that *Node) Board() entity.Board {
	return that.board
}

// Cells - raw cells for rendering.
func (that *Node) Cells() [entity.BoardSize]entity.Cell {
	return that.board.Cells()
}

// Position - the move (1..9) that produced this node, 0 for the root.
func (that *Node) Position() int {
	return that.position
}

func (that *Node) Parent() *Node {
	return that.parent
}

// Depth - number of moves between the root and this node.
func (that *Node) Depth() int {
	return that.board.Size()
}

// CurrentTurn - X moves on even sizes, O on odd ones.
func (that *Node) CurrentTurn() entity.Cell {
	if that.board.Size()%2 == 0 {
		return entity.X
	}

	return entity.O
}

func (that *Node) HasEnded() bool {
	status, _ := that.board.TerminalStatus()
	return status != entity.Ongoing
}

// Winner returns the winning mark or entity.Empty for a draw. Only meaningful once HasEnded.
func (that *Node) Winner() entity.Cell {
	_, winner := that.board.TerminalStatus()
	return winner
}

// ChildAt returns the child for a move at position, building and caching it on first use.
func (that *Node) ChildAt(position int) (*Node, error) {
	if position >= 1 && position <= entity.BoardSize {
		if child := that.children[position-1]; child != nil {
			return child, nil
		}
	}

	board, err := that.board.Place(position, that.CurrentTurn())
	if err != nil {
		return nil, fmt.Errorf("failed to build child: %w", err)
	}

	child := newNode(board, that, position)
	that.children[position-1] = child

	return child, nil
}

// AllChildren forces every legal child. Index i holds the child for position i+1, nil where illegal.
func (that *Node) AllChildren() [entity.BoardSize]*Node {
	for _, position := range that.board.LegalPositions() {
		if that.children[position-1] != nil {
			continue
		}

		// legal positions never fail to place
		board, _ := that.board.Place(position, that.CurrentTurn())
		that.children[position-1] = newNode(board, that, position)
	}

	return that.children
}

// ComputeProbabilities fills win/lose/draw chances from O's point of view.
// A terminal node is one-hot; any other node averages over all of its children,
// giving every legal continuation the same weight.
func (that *Node) ComputeProbabilities() {
	if that.HasEnded() {
		that.winProbability, that.loseProbability, that.drawProbability = 0, 0, 0

		switch that.Winner() {
		case entity.O:
			that.winProbability = 1
		case entity.X:
			that.loseProbability = 1
		default:
			that.drawProbability = 1
		}

		return
	}

	var win, lose, draw float64
	var count int

	for _, child := range that.AllChildren() {
		if child == nil {
			continue
		}

		child.ComputeProbabilities()
		win += child.winProbability
		lose += child.loseProbability
		draw += child.drawProbability
		count++
	}

	n := float64(count)
	that.winProbability = win / n
	that.loseProbability = lose / n
	that.drawProbability = draw / n
}

func (that *Node) WinProbability() float64 {
	return that.winProbability
}

func (that *Node) LoseProbability() float64 {
	return that.loseProbability
}

func (that *Node) DrawProbability() float64 {
	return that.drawProbability
}

func (that *Node) String() string {
	return fmt.Sprintf("{Position: %d, Depth: %d, Win: %.4f, Lose: %.4f, Draw: %.4f}",
		that.position, that.Depth(), that.winProbability, that.loseProbability, that.drawProbability)
}
