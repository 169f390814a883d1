package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Manager defines session lifecycle operations for the gateway. Each browser
// session owns one token slot in Redis, addressed by a session ID carried in
// an HTTP-only cookie.
type Manager interface {
	// Create stores the backend-issued token under a fresh session ID
	Create(ctx context.Context, token string, maxAge int) (string, error)
	// Resolve returns the token store bound to the given session ID
	Resolve(sessionID string) Store
	// Destroy removes the session and its token
	Destroy(ctx context.Context, sessionID string) error
	// Validate reports whether the session currently holds a token
	Validate(ctx context.Context, sessionID string) (bool, error)
}

// manager implements Manager on top of Redis
type manager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewManager creates a Redis-backed session manager. maxAge is the session
// lifetime in seconds and bounds every token slot the manager creates.
func NewManager(client *redis.Client, maxAge int) Manager {
	return &manager{
		client: client,
		ttl:    time.Duration(maxAge) * time.Second,
	}
}

// Create stores the token under a fresh session ID and returns the ID
func (m *manager) Create(ctx context.Context, token string, maxAge int) (string, error) {
	sessionID := uuid.New().String()

	ttl := m.ttl
	if maxAge > 0 {
		ttl = time.Duration(maxAge) * time.Second
	}

	if err := m.client.Set(ctx, sessionKey(sessionID), token, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return sessionID, nil
}

// Resolve returns the token store bound to the given session ID
func (m *manager) Resolve(sessionID string) Store {
	return NewRedisStore(m.client, sessionID, m.ttl)
}

// Destroy removes the session and its token
func (m *manager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Validate reports whether the session currently holds a token
func (m *manager) Validate(ctx context.Context, sessionID string) (bool, error) {
	count, err := m.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return count > 0, nil
}
