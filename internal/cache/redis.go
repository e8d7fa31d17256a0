package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "mlbscores:"

// Redis is a shared Backend. Redis key expiry enforces the kind TTL, so
// Sweep has nothing to do.
type Redis struct {
	client *redis.Client
	prefix string
}

type redisEnvelope struct {
	StoredAt time.Time       `json:"storedAt"`
	Value    json.RawMessage `json:"value"`
}

// NewRedis wraps an existing client. An empty prefix uses the default.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

// NewRedisFromURL parses a redis:// URL and connects lazily.
func NewRedisFromURL(rawURL string) (*Redis, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return NewRedis(redis.NewClient(opts), ""), nil
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	entry, err := decodeEnvelope(raw)
	if err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	data, err := encodeEnvelope(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefix+key, data, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *Redis) Sweep(context.Context, func(string, Entry) bool) ([]string, error) {
	return nil, nil
}

// Flush deletes every key under the prefix.
func (r *Redis) Flush(ctx context.Context) error {
	keys, err := r.keys(ctx)
	if err != nil || len(keys) == 0 {
		return err
	}
	pipe := r.client.Pipeline()
	for _, k := range keys {
		pipe.Del(ctx, k)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) Len(ctx context.Context) (int, error) {
	keys, err := r.keys(ctx)
	return len(keys), err
}

func (r *Redis) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

func encodeEnvelope(entry Entry) ([]byte, error) {
	value := entry.Value
	if len(value) == 0 {
		value = []byte("null")
	}
	return json.Marshal(redisEnvelope{StoredAt: entry.StoredAt, Value: value})
}

func decodeEnvelope(raw []byte) (Entry, error) {
	var env redisEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Entry{}, err
	}
	return Entry{Value: []byte(env.Value), StoredAt: env.StoredAt}, nil
}
