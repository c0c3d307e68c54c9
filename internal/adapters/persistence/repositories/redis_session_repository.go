package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lps-admin/internal/adapters/persistence/models"
	"lps-admin/internal/core/domain"
)

const sessionKeyPrefix = "lps-admin:session:"

// SessionKey returns the redis key holding a session
func SessionKey(id string) string {
	return sessionKeyPrefix + id
}

// redisSessionRepository implements SessionRepository on Redis.
// Keys expire at the session's expires_at, so no purge is needed.
type redisSessionRepository struct {
	rdb *redis.Client
}

// NewRedisSessionRepository creates a new redis-backed session repository
func NewRedisSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{rdb: rdb}
}

// Create stores a session until its expiry
func (r *redisSessionRepository) Create(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.rdb.SetArgs(ctx, SessionKey(session.ID), string(payload), redis.SetArgs{
		ExpireAt: session.ExpiresAt,
	}).Err()
}

// GetByID loads a session
func (r *redisSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	val, err := r.rdb.Get(ctx, SessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.IsRevoked() {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

// Revoke deletes the session key
func (r *redisSessionRepository) Revoke(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, SessionKey(id)).Err()
}

// DeleteExpired is a no-op; redis expires keys itself
func (r *redisSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
