package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrInvalidMove    = errors.New("invalid move")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrOutOfRange     = errors.New("cell is out of range")
	ErrInvalidPlayer  = errors.New("invalid player mark")
	ErrUnparsableMove = errors.New("could not parse move")
)

// ParseError is returned for move text that does not match the move grammar.
type ParseError struct {
	Input string
}

func (that *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnparsableMove, that.Input)
}

func (that *ParseError) Unwrap() error {
	return ErrUnparsableMove
}
