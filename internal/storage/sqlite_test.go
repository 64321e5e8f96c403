package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_PutGetRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	vectors := map[string][]float32{
		"key-a": {0.1, 0.2, 0.3},
		"key-b": {1, -1, 0.5},
	}
	require.NoError(t, store.Put(ctx, vectors))

	got, err := store.Get(ctx, []string{"key-a", "key-b", "key-missing"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, vectors["key-a"], got["key-a"])
	assert.Equal(t, vectors["key-b"], got["key-b"])
	assert.NotContains(t, got, "key-missing")
}

func TestSQLiteStore_PutReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, map[string][]float32{"key": {1, 2}}))
	require.NoError(t, store.Put(ctx, map[string][]float32{"key": {3, 4}}))

	got, err := store.Get(ctx, []string{"key"})
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4}, got["key"])
}

func TestSQLiteStore_EmptyArguments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	got, err := store.Get(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Put(ctx, nil))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, map[string][]float32{"key": {7, 8, 9}}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, []string{"key"})
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 8, 9}, got["key"])
}
