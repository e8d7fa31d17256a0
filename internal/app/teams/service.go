package teams

import (
	"context"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

const allTeamsKey = "all"

// Service serves the MLB team list through the cache.
type Service struct {
	provider providers.TeamProvider
	cache    *cache.Cache
}

// NewService constructs a Service with the provided upstream and cache.
func NewService(provider providers.TeamProvider, c *cache.Cache) *Service {
	return &Service{provider: provider, cache: c}
}

// Teams returns every MLB team sorted by name.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	list, err := cache.Fetch(ctx, s.cache, cache.KindTeams, allTeamsKey, s.provider.FetchTeams)
	if err != nil {
		return nil, err
	}
	teams.SortByName(list)
	return list, nil
}
