package tictactoe

import (
	"regexp"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Engine is the set of operations a tic-tac-toe implementation must provide.
// Harnesses call through this interface instead of looking functions up by name.
type Engine interface {
	IsMoveValid(board entity.Board, move entity.Move) bool
	ParseMoveInput(text string) (entity.Move, error)
	DetectWinner(board entity.Board) entity.Result
	PlayGame(source MoveSource, starting entity.Mark, opts ...Option) (entity.Result, error)
}

// DefaultEngine is the Engine backed by this package's functions.
type DefaultEngine struct{}

var _ Engine = DefaultEngine{}

func (DefaultEngine) IsMoveValid(board entity.Board, move entity.Move) bool {
	return IsMoveValid(board, move)
}

func (DefaultEngine) ParseMoveInput(text string) (entity.Move, error) {
	return ParseMoveInput(text)
}

func (DefaultEngine) DetectWinner(board entity.Board) entity.Result {
	return DetectWinner(board)
}

func (DefaultEngine) PlayGame(source MoveSource, starting entity.Mark, opts ...Option) (entity.Result, error) {
	return PlayGame(source, starting, opts...)
}

// moveInputPattern accepts "r,c", optionally parenthesised, with blanks around each digit.
var moveInputPattern = regexp.MustCompile(`^\(?\s*([0-9])\s*,\s*([0-9])\s*\)?$`)

// IsMoveValid - reports whether the move is on the board and targets an empty cell.
func IsMoveValid(board entity.Board, move entity.Move) bool {
	return move.InRange() && board.At(move) == entity.Empty
}

// ParseMoveInput - parses console text such as "1,2", "(1,2)" or " 2 , 0 ".
// Any digit is accepted; range is checked by IsMoveValid.
func ParseMoveInput(text string) (entity.Move, error) {
	groups := moveInputPattern.FindStringSubmatch(text)
	if groups == nil {
		return entity.Move{}, &apperror.ParseError{Input: text}
	}

	return entity.Move{
		Row: int(groups[1][0] - '0'),
		Col: int(groups[2][0] - '0'),
	}, nil
}

// WinnerInRows - returns the owner of the first complete row, top to bottom.
func WinnerInRows(board entity.Board) (entity.Mark, entity.Method, bool) {
	for i := 0; i < entity.BoardSize; i++ {
		if mark, ok := lineOwner(board[i][0], board[i][1], board[i][2]); ok {
			return mark, entity.RowMethod(i), true
		}
	}

	return entity.Empty, entity.Method{}, false
}

// WinnerInColumns - returns the owner of the first complete column, left to right.
func WinnerInColumns(board entity.Board) (entity.Mark, entity.Method, bool) {
	for i := 0; i < entity.BoardSize; i++ {
		if mark, ok := lineOwner(board[0][i], board[1][i], board[2][i]); ok {
			return mark, entity.ColumnMethod(i), true
		}
	}

	return entity.Empty, entity.Method{}, false
}

// WinnerInDiagonals - checks the main diagonal before the anti-diagonal.
func WinnerInDiagonals(board entity.Board) (entity.Mark, entity.Method, bool) {
	if mark, ok := lineOwner(board[0][0], board[1][1], board[2][2]); ok {
		return mark, entity.DiagonalMethod(entity.MainDiagonal), true
	}

	if mark, ok := lineOwner(board[0][2], board[1][1], board[2][0]); ok {
		return mark, entity.DiagonalMethod(entity.AntiDiagonal), true
	}

	return entity.Empty, entity.Method{}, false
}

// DetectWinner - checks rows, then columns, then diagonals. The first complete
// line decides the result; a full board without one is a tie.
func DetectWinner(board entity.Board) entity.Result {
	moves := board.Occupied()

	for _, check := range []func(entity.Board) (entity.Mark, entity.Method, bool){
		WinnerInRows,
		WinnerInColumns,
		WinnerInDiagonals,
	} {
		if mark, method, ok := check(board); ok {
			return entity.WinnerResult(mark, method, moves)
		}
	}

	if board.IsFull() {
		return entity.TieResult(moves)
	}

	return entity.IncompleteResult(moves)
}

func lineOwner(a, b, c entity.Mark) (entity.Mark, bool) {
	if a != entity.Empty && a == b && b == c {
		return a, true
	}

	return entity.Empty, false
}
