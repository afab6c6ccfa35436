package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"NGO_Platform/internal/repository"

	"github.com/redis/go-redis/v9"
)

var (
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrRevokeFailed     = errors.New("token revoke failed")
)

const RevokedTokenPrefix = "auth:token:revoked"

// TokenRepository keeps revoked token ids with a TTL equal to the token's remaining lifetime.
type TokenRepository struct {
	Client *redis.Client
}

var _ repository.TokenBlocklist = (*TokenRepository)(nil)

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{Client: client}
}

func (r *TokenRepository) key(jti string) string {
	return fmt.Sprintf("%s:%s", RevokedTokenPrefix, jti)
}

func (r *TokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := r.Client.Set(ctx, r.key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRevokeFailed, err)
	}
	return nil
}

func (r *TokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.Client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return n > 0, nil
}
