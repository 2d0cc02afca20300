package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"insight-srv/internal/trend/repository"
)

func (r *implCacheRepository) GetTrends(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveTrends(ctx context.Context, key string, data []byte) error {
	if r.ttl <= 0 {
		return nil
	}
	if err := r.redis.GetClient().Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "trend.repository.redis.SaveTrends: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
