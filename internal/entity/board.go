package entity

import (
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String - returns the glyph used when the board is printed.
func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark - converts "X" or "O" (any case) into a player mark.
func ParseMark(s string) (Mark, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, true
	case "O":
		return O, true
	default:
		return Empty, false
	}
}

// Move is a cell a player claims.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// InRange - reports whether both coordinates are on the board.
func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a fixed 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

// At - returns the mark at the move's cell. The move must be in range.
func (that *Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

// Occupied - returns the number of non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}

	return count
}

// IsFull - reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	return that.Occupied() == BoardSize*BoardSize
}

// Rows - renders the board as three lines of cells joined by "|".
func (that *Board) Rows() []string {
	lines := make([]string, 0, BoardSize)
	for _, row := range that {
		cells := make([]string, 0, BoardSize)
		for _, cell := range row {
			cells = append(cells, cell.String())
		}
		lines = append(lines, strings.Join(cells, "|"))
	}

	return lines
}

func (that Board) String() string {
	return strings.Join(that.Rows(), "\n")
}

// BoardFromRows - builds a board from three strings such as "XO-".
// Any character other than X or O is read as an empty cell.
func BoardFromRows(rows ...string) Board {
	var board Board
	for r := 0; r < BoardSize && r < len(rows); r++ {
		for c := 0; c < BoardSize && c < len(rows[r]); c++ {
			if mark, ok := ParseMark(rows[r][c : c+1]); ok {
				board[r][c] = mark
			}
		}
	}

	return board
}
