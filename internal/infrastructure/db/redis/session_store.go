package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

const defaultSessionTTL = 12 * time.Hour

// SessionStore keeps server-side dashboard sessions in Redis.
// Key format: session:<uuid>, value: JSON identity.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore; sessions expire after ttl.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores identity under a fresh session id and returns the id.
func (s *SessionStore) Create(ctx context.Context, identity domain.Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(id), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Get loads the identity of a session and refreshes its expiry.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Identity, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		return nil, err
	}

	if err := s.client.Expire(ctx, sessionKey(id), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}
	return identity, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func decodeIdentity(raw []byte) (*domain.Identity, error) {
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !identity.Valid() {
		return nil, domain.ErrSessionNotFound
	}
	return &identity, nil
}

func sessionKey(id string) string {
	return "session:" + id
}
