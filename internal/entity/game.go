package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Game owns the board of a single match. Every game has its own board.
type Game struct {
	ID     string
	Board  Board
	Turn   Mark
	Moves  int
	Result Result
}

func NewGame(id string, start Mark) (*Game, error) {
	if !start.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, start)
	}

	return &Game{
		ID:     id,
		Turn:   start,
		Result: IncompleteResult(0),
	}, nil
}

// IsFinished - reports whether the game has a winner or the board is full.
func (that *Game) IsFinished() bool {
	return that.Result.IsTerminal()
}

// MakeTurn - places the mark on the cell and passes the turn to the opponent.
// The board is left untouched when an error is returned.
func (that *Game) MakeTurn(playerMark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !move.InRange() {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, apperror.ErrOutOfRange, move)
	}

	if that.Board.At(move) != Empty {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	that.Board[move.Row][move.Col] = playerMark
	that.Moves++
	that.Turn = playerMark.Opponent()

	return nil
}
