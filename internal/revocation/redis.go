package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRegistry stores revoked token ids as keys with a TTL equal to the
// credential's remaining lifetime, so redis expires entries on its own.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

func (r *RedisRegistry) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past natural expiry; nothing worth remembering.
		return nil
	}
	return r.client.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

func (r *RedisRegistry) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func revocationKey(jti string) string {
	return "revoked:" + jti
}
