package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cdb-lk/cpds-api/internal/models"
)

// ErrSessionNotFound signals a missing or revoked session.
var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "cpds:session:"

// SessionRepository persists issued sessions in Redis, keyed separately
// from the domain documents.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Save stores the session until its expiry.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	if r.client == nil {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.TokenID, err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.TokenID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", session.TokenID, err)
	}
	return nil
}

// Get retrieves a session by token id.
func (r *SessionRepository) Get(ctx context.Context, tokenID string) (*models.Session, error) {
	if r.client == nil {
		return nil, ErrSessionNotFound
	}
	raw, err := r.client.Get(ctx, sessionKeyPrefix+tokenID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get session %s: %w", tokenID, err)
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", tokenID, err)
	}
	return &session, nil
}

// Revoke deletes a session, invalidating its token ahead of expiry.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, sessionKeyPrefix+tokenID).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", tokenID, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *SessionRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
