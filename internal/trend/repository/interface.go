package repository

import "context"

// CacheRepository caches serialized trend boards.
type CacheRepository interface {
	GetTrends(ctx context.Context, key string) ([]byte, error)
	SaveTrends(ctx context.Context, key string, data []byte) error
}
