package cache

import (
	"context"
	"time"
)

// Entry is a stored value stamped with the time it was fetched.
type Entry struct {
	Value    []byte
	StoredAt time.Time
}

// Backend stores raw entries. Keys arrive fully qualified with their kind.
type Backend interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Sweep removes entries for which expired returns true and reports their keys.
	Sweep(ctx context.Context, expired func(key string, entry Entry) bool) ([]string, error)
	Flush(ctx context.Context) error
	Len(ctx context.Context) (int, error)
}

// evictNotifier is implemented by backends that drop entries on their own.
type evictNotifier interface {
	onEvict(fn func(key string))
}
