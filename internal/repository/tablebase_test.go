package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func sampleBoard() entity.Board {
	return entity.Board{
		{entity.X, entity.X, entity.Empty},
		{entity.O, entity.O, entity.Empty},
		{entity.Empty, entity.Empty, entity.Empty},
	}
}

func TestTablebaseRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewTablebaseRepository(st.Storage)

	// Given: a solved position
	position := entity.NewPosition(sampleBoard(), 1, entity.Move{Row: 0, Col: 2})

	// When: CreateOrUpdate is called twice
	require.NoError(t, repo.CreateOrUpdate(ctx, position))
	require.NoError(t, repo.CreateOrUpdate(ctx, position))

	// Then: the position is stored once
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTablebaseRepository_GetByBoard(t *testing.T) {
	t.Run("GetByBoard_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewTablebaseRepository(st.Storage)

		// Given: a stored position
		position := entity.NewPosition(sampleBoard(), 1, entity.Move{Row: 0, Col: 2})
		require.NoError(t, repo.CreateOrUpdate(ctx, position))

		// When: GetByBoard is called with the same board
		retrieved, err := repo.GetByBoard(ctx, sampleBoard())

		// Then: the stored position comes back
		require.NoError(t, err)
		assert.Equal(t, position, retrieved)
		assert.Equal(t, "XX.OO....", retrieved.Board)
		assert.Equal(t, "X", retrieved.Turn)
	})

	t.Run("GetByBoard_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewTablebaseRepository(st.Storage)

		// When: GetByBoard is called for a board never stored
		retrieved, err := repo.GetByBoard(ctx, entity.InitialState())

		// Then: ErrPositionNotFound is returned
		require.Error(t, err)
		assert.Equal(t, ErrPositionNotFound, err)
		assert.Empty(t, retrieved.Board)
	})
}

func TestTablebaseRepository_Count(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewTablebaseRepository(st.Storage)

	// Given: an empty store
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// When: two different positions are stored
	require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewPosition(entity.InitialState(), 0, entity.Move{})))
	require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewPosition(sampleBoard(), 1, entity.Move{Row: 0, Col: 2})))

	// Then: both are counted
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
