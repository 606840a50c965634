package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/testing/suite"
)

func TestRedisStoreBoardSize(t *testing.T) {
	t.Run("NotStored", func(t *testing.T) {
		ctx, st := suite.New(t)
		store := NewRedisStoreFromClient(st.Redis, "")

		_, ok, err := store.LoadBoardSize(ctx)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		ctx, st := suite.New(t)
		store := NewRedisStoreFromClient(st.Redis, "test:size")

		require.NoError(t, store.SaveBoardSize(ctx, 6))

		size, ok, err := store.LoadBoardSize(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 6, size)

		raw, err := st.Redis.Get(ctx, "test:size").Result()
		require.NoError(t, err)
		assert.Equal(t, "6", raw)
	})

	t.Run("Clear", func(t *testing.T) {
		ctx, st := suite.New(t)
		store := NewRedisStoreFromClient(st.Redis, "test:size")
		require.NoError(t, store.SaveBoardSize(ctx, 4))

		require.NoError(t, store.ClearBoardSize(ctx))

		_, ok, err := store.LoadBoardSize(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, store.ClearBoardSize(ctx))
	})

	t.Run("Corrupt", func(t *testing.T) {
		ctx, st := suite.New(t)
		require.NoError(t, st.Redis.Set(ctx, DefaultRedisKey, "many", 0).Err())

		_, _, err := NewRedisStoreFromClient(st.Redis, "").LoadBoardSize(ctx)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("CloseKeepsBorrowedClient", func(t *testing.T) {
		ctx, st := suite.New(t)
		store := NewRedisStoreFromClient(st.Redis, "")

		require.NoError(t, store.Close())
		assert.NoError(t, st.Redis.Ping(ctx).Err())
	})
}
