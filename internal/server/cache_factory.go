package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/config"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

const cacheBackendRedis = "redis"

// redisPingTimeout remains a var for tests to override.
var redisPingTimeout = 2 * time.Second

// buildCache wires the configured backend. An unreachable redis falls back to
// memory so the service still starts. The returned closer is never nil.
func buildCache(cfg config.CacheConfig, logger *slog.Logger, recorder *metrics.Recorder) (*cache.Cache, func()) {
	backend, closer := buildCacheBackend(cfg, logger)
	ttls := cfg.TTLs
	c := cache.New(backend,
		cache.WithTTL(cache.KindTeams, ttls.Teams),
		cache.WithTTL(cache.KindGames, ttls.Games),
		cache.WithTTL(cache.KindSchedule, ttls.Schedule),
		cache.WithTTL(cache.KindGame, ttls.Game),
		cache.WithTTL(cache.KindStandings, ttls.Standings),
		cache.WithTTL(cache.KindLeaders, ttls.Leaders),
		cache.WithTTL(cache.KindSearch, ttls.Search),
		cache.WithTTL(cache.KindScores, ttls.Scores),
		cache.WithLogger(logger),
		cache.WithRecorder(recorder),
	)
	return c, closer
}

func buildCacheBackend(cfg config.CacheConfig, logger *slog.Logger) (cache.Backend, func()) {
	noop := func() {}
	if cfg.Backend != cacheBackendRedis {
		return cache.NewMemory(cfg.MaxEntries), noop
	}

	r, err := cache.NewRedisFromURL(cfg.RedisURL)
	if err != nil {
		logging.Error(logger, "invalid redis url, using memory cache", err)
		return cache.NewMemory(cfg.MaxEntries), noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		logging.Error(logger, "redis unreachable, using memory cache", err)
		_ = r.Close()
		return cache.NewMemory(cfg.MaxEntries), noop
	}

	logging.Info(logger, "redis cache connected")
	return r, func() {
		if err := r.Close(); err != nil {
			logging.Warn(logger, "redis close failed", "error", err)
		}
	}
}
