package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// BoardSize - number of cells on the board, positions are numbered 1..BoardSize row by row.
const BoardSize = 9

// Cell is the state of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	X          // human player
	O          // computer opponent
)

func (that Cell) String() string {
	switch that {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return " "
	}
}

// Opponent returns the other mark; Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Status - terminal status of a board.
type Status uint8

const (
	Ongoing Status = iota
	Win
	Draw
)

func (that Status) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return StatusOngoing
	}
}

// WinCombos - zero-based cell indexes of the 3 rows, 3 columns and 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is an immutable 3x3 grid. The zero value is the empty board.
type Board struct {
	cells [BoardSize]Cell
	size  int
}

// NewBoard - builds a board from raw cells in row-major order.
func NewBoard(cells [BoardSize]Cell) Board {
	board := Board{cells: cells}
	for _, cell := range cells {
		if cell != Empty {
			board.size++
		}
	}

	return board
}

// Place returns a copy of the board with mark set at position (1..9).
func (that Board) Place(position int, mark Cell) (Board, error) {
	if position < 1 || position > BoardSize {
		return that, fmt.Errorf("%w: got %d", apperror.ErrInvalidCell, position)
	}

	if mark == Empty {
		return that, fmt.Errorf("%w: cannot place an empty mark", apperror.ErrInvalidMove)
	}

	if that.cells[position-1] != Empty {
		return that, fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	that.cells[position-1] = mark
	that.size++

	return that, nil
}

// At returns the cell at position (1..9), Empty when out of range.
func (that Board) At(position int) Cell {
	if position < 1 || position > BoardSize {
		return Empty
	}

	return that.cells[position-1]
}

// Cells - raw cells in row-major order.
func (that Board) Cells() [BoardSize]Cell {
	return that.cells
}

// Size - number of marks on the board.
func (that Board) Size() int {
	return that.size
}

// LegalPositions - empty positions in ascending order.
func (that Board) LegalPositions() []int {
	positions := make([]int, 0, BoardSize-that.size)
	for i, cell := range that.cells {
		if cell == Empty {
			positions = append(positions, i+1)
		}
	}

	return positions
}

// TerminalStatus reports whether a line is complete, the board is full, or neither.
// The returned mark is the winner for Win and Empty otherwise.
func (that Board) TerminalStatus() (Status, Cell) {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != Empty && a == b && b == c {
			return Win, a
		}
	}

	// the game will continue until all the squares are full
	if that.size < BoardSize {
		return Ongoing, Empty
	}

	return Draw, Empty
}
