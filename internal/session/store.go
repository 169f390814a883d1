// Package session holds the bearer token that proves the user's identity to
// the marketplace backend. The token is opaque: presence alone implies an
// authenticated session, and no expiry or signature validation happens on the
// client side.
//
// A Store is the sole holder of the current token. The file store backs the
// CLI, the Redis store backs browser sessions in the gateway, and the memory
// store backs tests and short-lived embeddings.
package session

import (
	"context"
	"errors"
)

var (
	// ErrNoToken is returned by Get when no token is stored
	ErrNoToken = errors.New("no session token")
	// ErrSessionNotFound is returned when a gateway session does not exist
	ErrSessionNotFound = errors.New("session not found")
)

// Store defines the interface for bearer token storage operations.
// Set overwrites any prior token; Clear removes it. Writes are full
// overwrites, so the last writer wins when calls race.
type Store interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
	// IsAuthenticated reports whether a token is currently present.
	// It never returns an error; storage failures read as "not authenticated".
	IsAuthenticated(ctx context.Context) bool
}
