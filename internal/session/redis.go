package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client for gateway session storage
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// redisStore implements Store for a single gateway session. The token lives
// under a fixed key derived from the session ID, with a TTL so abandoned
// sessions expire on their own.
type redisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed token store bound to one session ID.
func NewRedisStore(client *redis.Client, sessionID string, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		key:    sessionKey(sessionID),
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Set stores the token with TTL, overwriting any prior value
func (s *redisStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Get retrieves the current token
func (s *redisStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// Clear removes the token
func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is present
func (s *redisStore) IsAuthenticated(ctx context.Context) bool {
	count, err := s.client.Exists(ctx, s.key).Result()
	return err == nil && count > 0
}
