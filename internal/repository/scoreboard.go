package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const scoreboardKey = "scoreboard"

const (
	fieldX          = "x"
	fieldO          = "o"
	fieldTie        = "tie"
	fieldIncomplete = "incomplete"
)

type ScoreboardRepository interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (entity.Scoreboard, error)
	Reset(ctx context.Context) error
}

type dbScoreboard struct {
	client *redis.Client
}

func NewScoreboardRepository(client *redis.Client) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
	}
}

// Record - adds one game outcome to the tallies.
func (that *dbScoreboard) Record(ctx context.Context, result entity.Result) error {
	if err := that.client.HIncrBy(ctx, scoreboardKey, outcomeField(result), 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbScoreboard) Get(ctx context.Context) (entity.Scoreboard, error) {
	fields, err := that.client.HGetAll(ctx, scoreboardKey).Result()
	if err != nil {
		return entity.Scoreboard{}, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	var scoreboard entity.Scoreboard
	for field, value := range fields {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return entity.Scoreboard{}, fmt.Errorf("failed to parse scoreboard field %s: %w", field, err)
		}

		switch field {
		case fieldX:
			scoreboard.X = count
		case fieldO:
			scoreboard.O = count
		case fieldTie:
			scoreboard.Ties = count
		case fieldIncomplete:
			scoreboard.Incomplete = count
		}
	}

	return scoreboard, nil
}

func (that *dbScoreboard) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoreboardKey).Err(); err != nil {
		return fmt.Errorf("failed to reset scoreboard: %w", err)
	}

	return nil
}

func outcomeField(result entity.Result) string {
	switch {
	case result.Outcome == entity.Winner && result.Winner == entity.X:
		return fieldX
	case result.Outcome == entity.Winner && result.Winner == entity.O:
		return fieldO
	case result.Outcome == entity.Tie:
		return fieldTie
	default:
		return fieldIncomplete
	}
}
