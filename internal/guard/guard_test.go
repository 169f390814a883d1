package guard

import (
	"context"
	"sync/atomic"
	"testing"

	"agrirent/internal/api"
	"agrirent/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectRendersViewWhenAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "T1"))

	var redirects, renders atomic.Int64
	g := New(store, api.NavigatorFunc(func() { redirects.Add(1) }))

	view := g.Protect(func(ctx context.Context) error {
		renders.Add(1)
		return nil
	})

	require.NoError(t, view(ctx))
	assert.Equal(t, int64(1), renders.Load())
	assert.Equal(t, int64(0), redirects.Load())
}

func TestProtectRedirectsOnceAndRendersNothingWhenUnauthenticated(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	var redirects, renders atomic.Int64
	g := New(store, api.NavigatorFunc(func() { redirects.Add(1) }))

	view := g.Protect(func(ctx context.Context) error {
		renders.Add(1)
		return nil
	})

	err := view(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, int64(0), renders.Load(), "protected content must not render")
	assert.Equal(t, int64(1), redirects.Load(), "exactly one redirect per mount")
}

func TestProtectChecksSessionAtEachMount(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	var renders atomic.Int64
	g := New(store, api.NopNavigator)

	view := g.Protect(func(ctx context.Context) error {
		renders.Add(1)
		return nil
	})

	// First mount: no session, nothing renders.
	assert.ErrorIs(t, view(ctx), ErrNotAuthenticated)

	// Login between mounts: the next mount renders.
	require.NoError(t, store.Set(ctx, "T1"))
	require.NoError(t, view(ctx))
	assert.Equal(t, int64(1), renders.Load())
}

func TestProtectPropagatesViewError(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "T1"))

	g := New(store, api.NopNavigator)

	wantErr := assert.AnError
	view := g.Protect(func(ctx context.Context) error { return wantErr })

	assert.ErrorIs(t, view(ctx), wantErr)
}
