package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates an empty game with the starting player on turn", func(t *testing.T) {
		// When: a new game is created with O starting
		game, err := NewGame("123", O)
		require.NoError(t, err)

		// Then: the board is empty and O is on turn
		expectedGame := &Game{
			ID:     "123",
			Turn:   O,
			Result: IncompleteResult(0),
		}
		require.Equal(t, expectedGame, game)
	})

	t.Run("Rejects an empty starting mark", func(t *testing.T) {
		// When: a new game is created without a player mark
		game, err := NewGame("123", Empty)

		// Then: ErrInvalidPlayer should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Nil(t, game)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game, err := NewGame("123", X)
		require.NoError(t, err)

		// When: Player X makes a valid turn
		err = game.MakeTurn(X, Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is placed and the turn switches
		assert.Equal(t, BoardFromRows("---", "-X-", "---"), game.Board)
		assert.Equal(t, O, game.Turn)
		assert.Equal(t, 1, game.Moves)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where the centre is occupied by Player X
		game, err := NewGame("123", X)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(X, Move{Row: 1, Col: 1}))

		// When: Player O tries to make a move to the same cell
		err = game.MakeTurn(O, Move{Row: 1, Col: 1})

		// Then: the move is rejected as occupied
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		assert.Equal(t, BoardFromRows("---", "-X-", "---"), game.Board)
		assert.Equal(t, O, game.Turn)
		assert.Equal(t, 1, game.Moves)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game, err := NewGame("123", X)
		require.NoError(t, err)

		// When: Player O tries to make a move
		err = game.MakeTurn(O, Move{Row: 0, Col: 0})

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on Out of Range Cell", func(t *testing.T) {
		for _, move := range []Move{{Row: 3, Col: 2}, {Row: 0, Col: 9}, {Row: -1, Col: 0}, {Row: 1, Col: 5}} {
			// Given: A new game
			game, err := NewGame("123", X)
			require.NoError(t, err)

			// When: a move outside the board is made
			err = game.MakeTurn(X, move)

			// Then: ErrOutOfRange should be returned and nothing placed
			require.ErrorIs(t, err, apperror.ErrOutOfRange, move.String())
			assert.Equal(t, X, game.Turn)
			assert.Zero(t, game.Moves)
		}
	})

	t.Run("Error after the game is finished", func(t *testing.T) {
		// Given: A game with a final result
		game, err := NewGame("123", X)
		require.NoError(t, err)
		game.Result = TieResult(9)

		// When: a player tries to move
		err = game.MakeTurn(X, Move{Row: 0, Col: 0})

		// Then: ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBoard_Rows(t *testing.T) {
	// Given: a partially filled board
	board := BoardFromRows("XO-", "-X-", "--O")

	// Then: rows are printed with "|" separators and "-" for empty cells
	assert.Equal(t, []string{"X|O|-", "-|X|-", "-|-|O"}, board.Rows())
	assert.Equal(t, "X|O|-\n-|X|-\n-|-|O", board.String())
	assert.Equal(t, 4, board.Occupied())
	assert.False(t, board.IsFull())
}

func TestMark(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())

	mark, ok := ParseMark(" o ")
	assert.True(t, ok)
	assert.Equal(t, O, mark)

	_, ok = ParseMark("-")
	assert.False(t, ok)
}

func TestParseMethod(t *testing.T) {
	t.Run("Parses every valid tag", func(t *testing.T) {
		for _, method := range []Method{
			RowMethod(0), RowMethod(2), ColumnMethod(1), DiagonalMethod(MainDiagonal), DiagonalMethod(AntiDiagonal), {},
		} {
			parsed, err := ParseMethod(method.String())
			require.NoError(t, err)
			assert.Equal(t, method, parsed)
		}
	})

	t.Run("Rejects unknown tags", func(t *testing.T) {
		for _, tag := range []string{"", "r3", "d2", "x0", "r", "c10"} {
			_, err := ParseMethod(tag)
			assert.ErrorIs(t, err, ErrInvalidMethod, tag)
		}
	})
}

func TestResult_Announcement(t *testing.T) {
	assert.Equal(t, "O", WinnerResult(O, ColumnMethod(0), 6).Announcement())
	assert.Equal(t, "No winner", TieResult(9).Announcement())
	assert.Equal(t, "No winner", IncompleteResult(4).Announcement())
	assert.Equal(t, "O wins by c0 after 6 moves", WinnerResult(O, ColumnMethod(0), 6).String())
}
