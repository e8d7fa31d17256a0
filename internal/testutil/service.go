package testutil

import (
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/store"
)

// NewMemoryCache builds a cache on the in-memory backend. A nil now uses time.Now.
func NewMemoryCache(now func() time.Time) *cache.Cache {
	return cache.New(cache.NewMemory(0), cache.WithClock(now))
}

// NewGamesService builds a games service over provider in UTC with a fresh
// cache and ledger, all sharing the clock.
func NewGamesService(provider providers.GameProvider, now func() time.Time) *games.Service {
	if now == nil {
		now = time.Now
	}
	return games.NewService(provider, NewMemoryCache(now), store.NewStatusLedger(), time.UTC, games.WithClock(now))
}
