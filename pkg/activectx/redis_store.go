package activectx

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis key, for shells that keep
// per-profile UI state server-side. The key and TTL come from Config so
// deployments can scope the value per browser profile.
type RedisStore struct {
	client *redis.Client
	cfg    Config
}

// NewRedisStore creates a Redis-backed store using cfg.StorageKey as the
// key and cfg.StorageTTL as the expiry (zero disables expiry).
func NewRedisStore(client *redis.Client, cfg Config) *RedisStore {
	return &RedisStore{client: client, cfg: cfg}
}

// Load returns the persisted code. A missing key is "" with no error.
func (r *RedisStore) Load(ctx context.Context) (string, error) {
	code, err := r.client.Get(ctx, r.cfg.StorageKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errors.Join(ErrStorageUnavailable, err)
	}
	return code, nil
}

// Save persists the code under the configured key.
func (r *RedisStore) Save(ctx context.Context, code string) error {
	if err := r.client.Set(ctx, r.cfg.StorageKey, code, r.cfg.StorageTTL).Err(); err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}

// Clear removes the key. A missing key is not an error.
func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.cfg.StorageKey).Err(); err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}
