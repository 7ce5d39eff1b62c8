package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks lda-portal/internal/cache Cache,ResetTokenStore

// Cache is a JSON key/value store with TTLs.
type Cache interface {
	// Set stores a value with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get loads a value into dest. Returns false if the key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// GetDel loads a value into dest and removes the key in one step.
	GetDel(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

var _ Cache = (*Redis)(nil)
