package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	mockedService "github.com/rocketscienceinc/tictactoe-console/mocks/service"
)

var errRedisDown = errors.New("redis down")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func columnWinForO() *tictactoe.MoveList {
	return tictactoe.NewMoveList(
		entity.Move{Row: 0, Col: 1}, entity.Move{Row: 2, Col: 0}, entity.Move{Row: 1, Col: 2},
		entity.Move{Row: 0, Col: 0}, entity.Move{Row: 2, Col: 2}, entity.Move{Row: 1, Col: 0},
	)
}

func TestGameService_Play(t *testing.T) {
	ctx := context.Background()
	expected := entity.WinnerResult(entity.O, entity.ColumnMethod(0), 6)

	t.Run("Records the result on the scoreboard", func(t *testing.T) {
		// Given: a scoreboard repository that accepts the result
		mockScoreboardRepo := mockedService.NewMockscoreboardRepo(t)
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, mockScoreboardRepo)

		mockScoreboardRepo.EXPECT().
			Record(mock.Anything, expected).
			Return(nil).
			Once()
		mockScoreboardRepo.EXPECT().
			Get(mock.Anything).
			Return(entity.Scoreboard{O: 1}, nil).
			Once()

		// When: a game is played to the end
		result, err := gameService.Play(ctx, columnWinForO(), nil, entity.X)

		// Then: O wins and the result was recorded
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("Scoreboard failure does not fail the game", func(t *testing.T) {
		mockScoreboardRepo := mockedService.NewMockscoreboardRepo(t)
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, mockScoreboardRepo)

		mockScoreboardRepo.EXPECT().
			Record(mock.Anything, mock.AnythingOfType("entity.Result")).
			Return(errRedisDown).
			Once()

		result, err := gameService.Play(ctx, columnWinForO(), nil, entity.X)

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("Works without a scoreboard", func(t *testing.T) {
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, nil)

		result, err := gameService.Play(ctx, tictactoe.NewMoveList(), nil, entity.X)

		require.NoError(t, err)
		assert.Equal(t, entity.IncompleteResult(0), result)
	})

	t.Run("Returns engine errors", func(t *testing.T) {
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, nil)

		_, err := gameService.Play(ctx, tictactoe.NewMoveList(), nil, entity.Empty)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to play game")
	})
}

func TestGameService_Scoreboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the tallies", func(t *testing.T) {
		mockScoreboardRepo := mockedService.NewMockscoreboardRepo(t)
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, mockScoreboardRepo)

		mockScoreboardRepo.EXPECT().
			Get(mock.Anything).
			Return(entity.Scoreboard{X: 3, Ties: 2}, nil).
			Once()

		scoreboard, err := gameService.Scoreboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.Scoreboard{X: 3, Ties: 2}, scoreboard)
	})

	t.Run("Wraps repository errors", func(t *testing.T) {
		mockScoreboardRepo := mockedService.NewMockscoreboardRepo(t)
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, mockScoreboardRepo)

		mockScoreboardRepo.EXPECT().
			Get(mock.Anything).
			Return(entity.Scoreboard{}, errRedisDown).
			Once()

		_, err := gameService.Scoreboard(ctx)

		assert.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Empty without a scoreboard", func(t *testing.T) {
		gameService := NewGameService(testLogger(), tictactoe.DefaultEngine{}, nil)

		scoreboard, err := gameService.Scoreboard(ctx)

		require.NoError(t, err)
		assert.Zero(t, scoreboard.Total())
	})
}
