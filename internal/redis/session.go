package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"busriya/internal/domain"
)

// SessionStore persists sessions in Redis so a login survives page
// loads and gateway restarts.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore with the given session
// lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

const sessionPrefix = "session:"

// Get retrieves a session by ID. Returns nil on a miss; reads refresh
// the session's expiry.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	key := sessionPrefix + id
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	// Sliding expiry.
	_ = s.client.Expire(ctx, key, s.ttl).Err()

	return &session, nil
}

// Set stores a session under its ID.
func (s *SessionStore) Set(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.ID, data, s.ttl).Err()
}

// Delete removes a session by ID.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}
