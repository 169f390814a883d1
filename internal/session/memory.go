package session

import (
	"context"
	"sync"
)

// memoryStore implements Store with an in-process token slot
type memoryStore struct {
	mu      sync.RWMutex
	token   string
	present bool
}

// NewMemoryStore creates an in-memory session store. It is safe for
// concurrent use and holds the token only for the process lifetime.
func NewMemoryStore() Store {
	return &memoryStore{}
}

// Set stores the token, overwriting any prior value
func (s *memoryStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.present = true
	return nil
}

// Get retrieves the current token
func (s *memoryStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return "", ErrNoToken
	}
	return s.token, nil
}

// Clear removes the token
func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.present = false
	return nil
}

// IsAuthenticated reports whether a token is present
func (s *memoryStore) IsAuthenticated(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present
}
