package tictactoe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxMoves = entity.BoardSize * entity.BoardSize

// MoveSource supplies the next move for a player. io.EOF means no more moves
// will come; the game then ends as incomplete.
type MoveSource interface {
	NextMove(player entity.Mark) (entity.Move, error)
}

// Renderer shows the progress of a game.
type Renderer interface {
	Board(board entity.Board)
	Rejected(player entity.Mark, err error)
	Result(result entity.Result)
}

type options struct {
	logger   *slog.Logger
	renderer Renderer
	gameID   string
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithRenderer(renderer Renderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}

func WithGameID(id string) Option {
	return func(o *options) {
		o.gameID = id
	}
}

// MakeTurn - places the player's mark and refreshes the game result.
func MakeTurn(game *entity.Game, player entity.Mark, move entity.Move) error {
	if err := game.MakeTurn(player, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Result = DetectWinner(game.Board)

	return nil
}

// PlayGame - runs the turn loop until someone wins, the board is full or the
// source runs out of moves. Unparsable and illegal moves are reported to the
// renderer and the same player is asked again; they never end the game.
// Only a source failure other than io.EOF is returned as an error.
func PlayGame(source MoveSource, starting entity.Mark, opts ...Option) (entity.Result, error) {
	o := &options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		renderer: nopRenderer{},
	}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger.With("method", "PlayGame", "game_id", o.gameID)

	game, err := entity.NewGame(o.gameID, starting)
	if err != nil {
		return entity.Result{}, fmt.Errorf("failed to start game: %w", err)
	}

	showBoard := true
	for !game.IsFinished() && game.Moves < maxMoves {
		if showBoard {
			o.renderer.Board(game.Board)
			showBoard = false
		}

		player := game.Turn

		move, err := source.NextMove(player)
		if errors.Is(err, io.EOF) {
			log.Debug("move source exhausted", "moves", game.Moves)
			break
		}

		var parseErr *apperror.ParseError
		if errors.As(err, &parseErr) {
			log.Debug("rejected move input", "player", player.String(), "input", parseErr.Input)
			o.renderer.Rejected(player, err)
			continue
		}

		if err != nil {
			return game.Result, fmt.Errorf("failed to get next move: %w", err)
		}

		if err = MakeTurn(game, player, move); err != nil {
			if !errors.Is(err, apperror.ErrInvalidMove) {
				return game.Result, err
			}

			log.Debug("rejected move", "player", player.String(), "move", move.String(), "error", err)
			o.renderer.Rejected(player, err)
			continue
		}

		showBoard = true
	}

	o.renderer.Board(game.Board)
	o.renderer.Result(game.Result)

	log.Info("game over", "outcome", game.Result.Outcome.String(), "winner", game.Result.Winner.String(),
		"method", game.Result.Method.String(), "moves", game.Result.Moves)

	return game.Result, nil
}

// MoveList is a pre-recorded MoveSource. It hands out moves in order
// regardless of the player asking.
type MoveList struct {
	moves []entity.Move
	next  int
}

func NewMoveList(moves ...entity.Move) *MoveList {
	return &MoveList{moves: moves}
}

func (that *MoveList) NextMove(_ entity.Mark) (entity.Move, error) {
	if that.next >= len(that.moves) {
		return entity.Move{}, io.EOF
	}

	move := that.moves[that.next]
	that.next++

	return move, nil
}

// Remaining - returns the number of moves not yet handed out.
func (that *MoveList) Remaining() int {
	return len(that.moves) - that.next
}

type nopRenderer struct{}

func (nopRenderer) Board(entity.Board)          {}
func (nopRenderer) Rejected(entity.Mark, error) {}
func (nopRenderer) Result(entity.Result)        {}
