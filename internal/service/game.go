package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type GameService interface {
	Play(ctx context.Context, source tictactoe.MoveSource, renderer tictactoe.Renderer, starting entity.Mark) (entity.Result, error)
	Scoreboard(ctx context.Context) (entity.Scoreboard, error)
}

type scoreboardRepo interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (entity.Scoreboard, error)
}

type gameService struct {
	logger *slog.Logger

	engine         tictactoe.Engine
	scoreboardRepo scoreboardRepo
}

// NewGameService - scoreboardRepo may be nil, results are then only logged.
func NewGameService(logger *slog.Logger, engine tictactoe.Engine, scoreboardRepo scoreboardRepo) GameService {
	return &gameService{
		logger:         logger.With("component", "game_service"),
		engine:         engine,
		scoreboardRepo: scoreboardRepo,
	}
}

// Play - runs one game under a fresh game ID and records its outcome.
func (that *gameService) Play(ctx context.Context, source tictactoe.MoveSource, renderer tictactoe.Renderer, starting entity.Mark) (entity.Result, error) {
	gameID := uuid.NewString()
	log := that.logger.With("method", "Play", "game_id", gameID)

	log.Info("game started", "starting_player", starting.String())

	opts := []tictactoe.Option{tictactoe.WithLogger(that.logger), tictactoe.WithGameID(gameID)}
	if renderer != nil {
		opts = append(opts, tictactoe.WithRenderer(renderer))
	}

	result, err := that.engine.PlayGame(source, starting, opts...)
	if err != nil {
		return result, fmt.Errorf("failed to play game %s: %w", gameID, err)
	}

	if that.scoreboardRepo == nil {
		return result, nil
	}

	// the game itself is over, a scoreboard outage only costs the tally
	if err = that.scoreboardRepo.Record(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
		return result, nil
	}

	if scoreboard, err := that.scoreboardRepo.Get(ctx); err == nil {
		log.Info("scoreboard", "x", scoreboard.X, "o", scoreboard.O, "tie", scoreboard.Ties, "incomplete", scoreboard.Incomplete)
	}

	return result, nil
}

func (that *gameService) Scoreboard(ctx context.Context) (entity.Scoreboard, error) {
	if that.scoreboardRepo == nil {
		return entity.Scoreboard{}, nil
	}

	scoreboard, err := that.scoreboardRepo.Get(ctx)
	if err != nil {
		return entity.Scoreboard{}, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboard, nil
}
