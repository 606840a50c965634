package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Check that the file and its directory were created
	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tictactoe/prefs.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".tictactoe", "prefs.db"))
	assert.NoError(t, err)
}

func TestStoreBoardSize(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	// Given: an empty store
	_, ok, err := store.LoadBoardSize(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty store should report no preference")

	// When: a size is saved twice
	require.NoError(t, store.SaveBoardSize(ctx, 5))
	require.NoError(t, store.SaveBoardSize(ctx, 7))

	// Then: the latest value wins
	size, ok, err := store.LoadBoardSize(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, size)
}

func TestStoreBoardSizePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveBoardSize(ctx, 4))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	size, ok, err := store.LoadBoardSize(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, size)
}

func TestStoreCorruptBoardSize(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, KeyBoardSize, "large"))

	_, _, err := store.LoadBoardSize(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestStoreClearBoardSize(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.SaveBoardSize(ctx, 7))
	require.NoError(t, store.Set(ctx, "theme", "dark"))
	require.NoError(t, store.ClearBoardSize(ctx))

	_, ok, err := store.LoadBoardSize(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	prefs, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, prefs, 1, "only the board size should be removed")
	assert.Equal(t, "theme", prefs[0].Key)

	require.NoError(t, store.ClearBoardSize(ctx), "clearing twice is not an error")
}

func TestStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "theme", "dark"))
	require.NoError(t, store.Set(ctx, KeyBoardSize, "3"))

	value, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	prefs, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, prefs, 2)
	assert.Equal(t, KeyBoardSize, prefs[0].Key)
	assert.Equal(t, "theme", prefs[1].Key)
	assert.False(t, prefs[0].UpdatedAt.IsZero(), "updated_at should be parsed")

	require.NoError(t, store.Delete(ctx, "theme"))
	require.NoError(t, store.Delete(ctx, "theme"))

	_, ok, err = store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}
