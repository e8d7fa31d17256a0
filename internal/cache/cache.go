package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

// Cache serves upstream responses for a fixed window per resource kind.
// Concurrent misses on the same key share one load.
type Cache struct {
	backend Backend
	ttls    map[Kind]time.Duration
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Recorder
	group   singleflight.Group

	hits      atomic.Int64
	misses    atomic.Int64
	loads     atomic.Int64
	evictions atomic.Int64
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Loads     int64 `json:"loads"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
}

// Option customizes a Cache.
type Option func(*Cache)

// WithTTL overrides the TTL of one kind. Non-positive values are ignored.
func WithTTL(kind Kind, ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttls[kind] = ttl
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

func WithRecorder(rec *metrics.Recorder) Option {
	return func(c *Cache) { c.metrics = rec }
}

// New constructs a Cache over backend. A nil backend gets an unbounded Memory.
func New(backend Backend, opts ...Option) *Cache {
	if backend == nil {
		backend = NewMemory(0)
	}
	c := &Cache{
		backend: backend,
		ttls:    DefaultTTLs(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if n, ok := backend.(evictNotifier); ok {
		n.onEvict(func(key string) { c.recordEvictions(kindOf(key), 1) })
	}
	return c
}

// TTL returns the freshness window for kind.
func (c *Cache) TTL(kind Kind) time.Duration {
	return c.ttls[kind]
}

// Get returns the stored value and whether it is still fresh.
// A stale value is returned with fresh=false; a missing one as nil.
func (c *Cache) Get(ctx context.Context, kind Kind, key string) ([]byte, bool) {
	value, fresh := c.peek(ctx, kind, fullKey(kind, key))
	c.recordLookup(kind, fresh)
	return value, fresh
}

// Put stores value for key, stamped with the current time.
func (c *Cache) Put(ctx context.Context, kind Kind, key string, value []byte) error {
	return c.store(ctx, kind, fullKey(kind, key), value)
}

// Fetch returns the cached value for key, calling load on a miss.
// Failed loads are not cached. The load runs detached from the caller's
// cancellation because other callers may be waiting on it.
func Fetch[T any](ctx context.Context, c *Cache, kind Kind, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	full := fullKey(kind, key)
	reload := false

	if raw, fresh := c.Get(ctx, kind, key); fresh {
		var out T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		logging.Warn(c.log(ctx), "cache entry undecodable, reloading",
			slog.String(logging.FieldKind, string(kind)),
			slog.String(logging.FieldKey, key),
		)
		// Drop it so the load below is not short-circuited by the same bytes.
		reload = true
		if err := c.backend.Delete(ctx, full); err != nil {
			logging.Error(c.log(ctx), "cache delete failed", err,
				slog.String(logging.FieldKind, string(kind)),
				slog.String(logging.FieldKey, key),
			)
		}
	}

	result, err, _ := c.group.Do(full, func() (any, error) {
		if raw, fresh := c.peek(ctx, kind, full); fresh && !reload {
			return raw, nil
		}
		start := c.now()
		val, loadErr := load(context.WithoutCancel(ctx))
		c.loads.Add(1)
		c.metrics.RecordCacheLoad(string(kind), c.now().Sub(start), loadErr)
		if loadErr != nil {
			return nil, loadErr
		}
		raw, encErr := json.Marshal(val)
		if encErr != nil {
			return nil, encErr
		}
		if storeErr := c.store(ctx, kind, full, raw); storeErr != nil {
			logging.Error(c.log(ctx), "cache store failed", storeErr,
				slog.String(logging.FieldKind, string(kind)),
				slog.String(logging.FieldKey, key),
			)
		}
		return raw, nil
	})
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(result.([]byte), &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Sweep drops every entry at or past its kind's TTL and returns how many went.
func (c *Cache) Sweep(ctx context.Context) int {
	now := c.now()
	removed, err := c.backend.Sweep(ctx, func(key string, e Entry) bool {
		ttl := c.TTL(kindOf(key))
		return ttl <= 0 || now.Sub(e.StoredAt) >= ttl
	})
	if err != nil {
		logging.Error(c.log(ctx), "cache sweep failed", err)
	}
	perKind := make(map[Kind]int)
	for _, key := range removed {
		perKind[kindOf(key)]++
	}
	for kind, n := range perKind {
		c.recordEvictions(kind, n)
	}
	return len(removed)
}

// Flush drops every entry.
func (c *Cache) Flush(ctx context.Context) error {
	return c.backend.Flush(ctx)
}

// Stats reports counters and the current entry count.
func (c *Cache) Stats(ctx context.Context) Stats {
	entries, err := c.backend.Len(ctx)
	if err != nil {
		logging.Warn(c.log(ctx), "cache length unavailable", "error", err)
	}
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Loads:     c.loads.Load(),
		Evictions: c.evictions.Load(),
		Entries:   entries,
	}
}

func (c *Cache) peek(ctx context.Context, kind Kind, full string) ([]byte, bool) {
	e, ok, err := c.backend.Get(ctx, full)
	if err != nil {
		logging.Warn(c.log(ctx), "cache read failed, treating as miss",
			slog.String(logging.FieldKind, string(kind)),
			"error", err,
		)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return e.Value, c.now().Sub(e.StoredAt) < c.TTL(kind)
}

func (c *Cache) store(ctx context.Context, kind Kind, full string, value []byte) error {
	return c.backend.Set(ctx, full, Entry{Value: value, StoredAt: c.now()}, c.TTL(kind))
}

func (c *Cache) recordLookup(kind Kind, hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	c.metrics.RecordCacheLookup(string(kind), hit)
}

func (c *Cache) recordEvictions(kind Kind, n int) {
	c.evictions.Add(int64(n))
	c.metrics.RecordCacheEvictions(string(kind), n)
}

func (c *Cache) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, c.logger)
}
