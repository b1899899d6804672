package tictactoe

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestNewStrategy(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Known names", func(t *testing.T) {
		for _, name := range []string{StrategyMinimax, StrategyFirst, StrategyGreedy} {
			strategy, err := NewStrategy(name, logger, OpeningCorner)
			require.NoError(t, err)
			assert.Equal(t, name, strategy.Name())
		}
	})

	t.Run("Empty name defaults to minimax", func(t *testing.T) {
		strategy, err := NewStrategy("", logger, OpeningCorner)
		require.NoError(t, err)
		assert.IsType(t, &Minimax{}, strategy)
	})

	t.Run("Unknown name", func(t *testing.T) {
		strategy, err := NewStrategy("random", logger, OpeningCorner)
		require.ErrorIs(t, err, ErrUnknownStrategy)
		assert.Nil(t, strategy)
	})
}

func TestFirstAvailable_NextMove(t *testing.T) {
	t.Run("Plays the first empty cell", func(t *testing.T) {
		// Given: the first row is full
		board := entity.Board{
			{x, o, x},
			{e, o, e},
			{e, e, e},
		}

		// When: asking for a move
		move, err := FirstAvailable{}.NextMove(board)

		// Then: the first empty cell in row-major order is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 0}, move)
	})

	t.Run("Error on terminal board", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}

		_, err := FirstAvailable{}.NextMove(board)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestWinIfPossible_NextMove(t *testing.T) {
	t.Run("Takes the win for O", func(t *testing.T) {
		// Given: O can complete the middle row
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{x, e, e},
		}

		// When: asking for a move
		move, err := WinIfPossible{}.NextMove(board)

		// Then: O completes the row instead of playing the first empty cell
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Falls back to the first empty cell", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		move, err := WinIfPossible{}.NextMove(board)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 1}, move)
	})
}

func TestStrategies_AgainstMinimax(t *testing.T) {
	engine := newTestMinimax(OpeningCorner)

	t.Run("Minimax as X beats first available", func(t *testing.T) {
		board, moves := playOut(t, engine, FirstAvailable{})

		assert.Equal(t, entity.X, board.Winner())
		assert.Len(t, moves, 7)
	})

	t.Run("Minimax as O beats the greedy player", func(t *testing.T) {
		board, moves := playOut(t, WinIfPossible{}, engine)

		assert.Equal(t, entity.O, board.Winner())
		assert.Len(t, moves, 6)
	})

	t.Run("Weak strategies never beat minimax", func(t *testing.T) {
		for _, weak := range []Strategy{FirstAvailable{}, WinIfPossible{}} {
			asO, _ := playOut(t, engine, weak)
			asX, _ := playOut(t, weak, engine)

			assert.NotEqual(t, entity.O, asO.Winner(), weak.Name())
			assert.NotEqual(t, entity.X, asX.Winner(), weak.Name())
		}
	})
}
