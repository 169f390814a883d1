package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the semantics every Store implementation shares
func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	// Empty store: absent token, not authenticated, Get never panics.
	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, store.IsAuthenticated(ctx))

	// Set makes the token visible and flips the predicate.
	require.NoError(t, store.Set(ctx, "T1"))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
	assert.True(t, store.IsAuthenticated(ctx))

	// Set overwrites: last writer wins.
	require.NoError(t, store.Set(ctx, "T2"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", token)

	// Clear removes the token and is idempotent.
	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, store.IsAuthenticated(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestMemoryStoreContract(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestFileStoreContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrirent", "token")
	storeContract(t, NewFileStore(path))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	first := NewFileStore(path)
	require.NoError(t, first.Set(ctx, "T1"))

	// A fresh store over the same path sees the token, like a new CLI run.
	second := NewFileStore(path)
	token, err := second.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)

	require.NoError(t, second.Clear(ctx))
	assert.False(t, first.IsAuthenticated(ctx))
}

func TestFileStoreTreatsEmptyFileAsNoToken(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	store := NewFileStore(path)
	require.NoError(t, store.Set(ctx, ""))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}
