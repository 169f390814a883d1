package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileStore implements Store by persisting the token to a single file.
// This is the CLI's client-side storage: one token under one fixed path.
type fileStore struct {
	path string
}

// NewFileStore creates a file-backed session store at the given path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// DefaultTokenPath returns the conventional token location under the user
// config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "agrirent", "token"), nil
}

// Set persists the token, overwriting any prior value
func (s *fileStore) Set(ctx context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}
	// The token is a credential; keep the file private to the user.
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Get retrieves the current token
func (s *fileStore) Get(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Clear removes the token file
func (s *fileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is present
func (s *fileStore) IsAuthenticated(ctx context.Context) bool {
	_, err := s.Get(ctx)
	return err == nil
}
