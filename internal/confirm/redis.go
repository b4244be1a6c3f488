package confirm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "warehouse:delete-confirm:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context, productID string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+productID, token, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Verify(ctx context.Context, productID, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	val, err := s.rdb.Get(ctx, keyPrefix+productID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == token, nil
}

func (s *RedisStore) Revoke(ctx context.Context, productID string) error {
	return s.rdb.Del(ctx, keyPrefix+productID).Err()
}
