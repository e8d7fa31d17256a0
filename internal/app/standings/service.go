package standings

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/timeutil"
)

// Service serves division standings through the cache.
type Service struct {
	provider providers.StandingsProvider
	cache    *cache.Cache
	loc      *time.Location
	now      func() time.Time
}

func NewService(provider providers.StandingsProvider, c *cache.Cache, loc *time.Location) *Service {
	return &Service{provider: provider, cache: c, loc: loc, now: time.Now}
}

// Standings returns every division table for season, defaulting to the current year.
func (s *Service) Standings(ctx context.Context, season string) ([]standings.Record, error) {
	if season == "" {
		season = timeutil.Season(s.now(), s.loc)
	}
	records, err := cache.Fetch(ctx, s.cache, cache.KindStandings, season, func(ctx context.Context) ([]standings.Record, error) {
		return s.provider.FetchStandings(ctx, season)
	})
	if err != nil {
		return nil, err
	}
	standings.SortAll(records)
	return records, nil
}
