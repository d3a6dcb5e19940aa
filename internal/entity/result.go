package entity

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidMethod = errors.New("invalid method tag")

// Direction of a winning line.
type Direction byte

const (
	NoDirection  Direction = 0
	RowLine      Direction = 'r'
	ColumnLine   Direction = 'c'
	DiagonalLine Direction = 'd'
)

// Diagonal indices.
const (
	MainDiagonal = 0 // top-left to bottom-right
	AntiDiagonal = 1 // top-right to bottom-left
)

// Method identifies the line that produced a win.
type Method struct {
	Direction Direction
	Index     int
}

func RowMethod(index int) Method      { return Method{Direction: RowLine, Index: index} }
func ColumnMethod(index int) Method   { return Method{Direction: ColumnLine, Index: index} }
func DiagonalMethod(index int) Method { return Method{Direction: DiagonalLine, Index: index} }

// IsZero - reports whether no line is identified.
func (that Method) IsZero() bool {
	return that.Direction == NoDirection
}

// String - returns the two-character tag, e.g. "r0", "c2", "d1", or "-" when empty.
func (that Method) String() string {
	if that.IsZero() {
		return "-"
	}

	return string(that.Direction) + strconv.Itoa(that.Index)
}

// ParseMethod - parses a tag produced by Method.String.
func ParseMethod(tag string) (Method, error) {
	if tag == "-" {
		return Method{}, nil
	}

	if len(tag) != 2 {
		return Method{}, fmt.Errorf("%w: %q", ErrInvalidMethod, tag)
	}

	index := int(tag[1] - '0')

	switch dir := Direction(tag[0]); dir {
	case RowLine, ColumnLine:
		if index < 0 || index >= BoardSize {
			return Method{}, fmt.Errorf("%w: %q", ErrInvalidMethod, tag)
		}
		return Method{Direction: dir, Index: index}, nil
	case DiagonalLine:
		if index != MainDiagonal && index != AntiDiagonal {
			return Method{}, fmt.Errorf("%w: %q", ErrInvalidMethod, tag)
		}
		return Method{Direction: dir, Index: index}, nil
	default:
		return Method{}, fmt.Errorf("%w: %q", ErrInvalidMethod, tag)
	}
}

// Outcome of a game.
type Outcome int

const (
	Incomplete Outcome = iota
	Winner
	Tie
)

func (that Outcome) String() string {
	switch that {
	case Winner:
		return "winner"
	case Tie:
		return "tie"
	default:
		return "incomplete"
	}
}

// Result is the state of a game as seen by the win detector.
type Result struct {
	Outcome Outcome
	Winner  Mark
	Method  Method
	// Moves is the number of accepted moves.
	Moves int
}

func WinnerResult(winner Mark, method Method, moves int) Result {
	return Result{Outcome: Winner, Winner: winner, Method: method, Moves: moves}
}

func TieResult(moves int) Result {
	return Result{Outcome: Tie, Moves: moves}
}

func IncompleteResult(moves int) Result {
	return Result{Outcome: Incomplete, Moves: moves}
}

// IsTerminal - reports whether no further move can be played.
func (that Result) IsTerminal() bool {
	return that.Outcome == Winner || that.Outcome == Tie
}

// Announcement - returns the final console line: the winning mark or "No winner".
func (that Result) Announcement() string {
	if that.Outcome == Winner {
		return that.Winner.String()
	}

	return "No winner"
}

func (that Result) String() string {
	switch that.Outcome {
	case Winner:
		return fmt.Sprintf("%s wins by %s after %d moves", that.Winner, that.Method, that.Moves)
	case Tie:
		return fmt.Sprintf("tie after %d moves", that.Moves)
	default:
		return fmt.Sprintf("incomplete after %d moves", that.Moves)
	}
}
