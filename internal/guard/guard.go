// Package guard gates the rendering of protected views on local session
// state. The check is advisory UX only: the backend independently rejects
// unauthorized requests, the guard just avoids mounting views whose data
// fetches would immediately fail.
package guard

import (
	"context"
	"errors"

	"agrirent/internal/api"
	"agrirent/internal/session"
)

// ErrNotAuthenticated is returned when a protected view was not rendered
// because no session token was present at mount time.
var ErrNotAuthenticated = errors.New("not authenticated")

// View renders protected content
type View func(ctx context.Context) error

// Guard wraps protected views with a session presence check
type Guard struct {
	store session.Store
	nav   api.Navigator
}

// New creates a guard bound to a session store and a navigator
func New(store session.Store, nav api.Navigator) *Guard {
	return &Guard{store: store, nav: nav}
}

// Protect wraps a view. Each invocation checks the session once: with no
// token present it triggers exactly one login redirect and the view never
// renders; otherwise the view renders normally.
func (g *Guard) Protect(view View) View {
	return func(ctx context.Context) error {
		if !g.store.IsAuthenticated(ctx) {
			g.nav.LoginRedirect()
			return ErrNotAuthenticated
		}
		return view(ctx)
	}
}
