package redis

import (
	"time"

	"insight-srv/internal/analysis/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
