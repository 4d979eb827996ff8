package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/platform/constants"
)

// RedisSessionStore keeps refresh sessions in redis with a TTL.
//
// Keys hold the SHA-256 hash of the refresh token, never the token
// itself; values are the owning username.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixRefreshSession + tokenHash
}

func (store *RedisSessionStore) Save(context context.Context, tokenHash, username string, ttl time.Duration) error {
	if err := store.client.Set(context, sessionKey(tokenHash), username, ttl).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("access: failed to save refresh session: %w", err))
	}
	return nil
}

func (store *RedisSessionStore) Resolve(context context.Context, tokenHash string) (string, error) {
	username, err := store.client.Get(context, sessionKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperr.Unauthorized("Refresh session expired or revoked")
	}
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("access: failed to resolve refresh session: %w", err))
	}
	return username, nil
}

func (store *RedisSessionStore) Delete(context context.Context, tokenHash string) error {
	if err := store.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("access: failed to delete refresh session: %w", err))
	}
	return nil
}
