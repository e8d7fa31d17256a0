package search

import (
	"context"
	"errors"
	"strings"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

// ErrEmptyQuery is returned when no search term is given.
var ErrEmptyQuery = errors.New("search term is required")

const allLeagues = "all"

// Service searches teams in the generic sports database.
type Service struct {
	provider providers.SportsProvider
	cache    *cache.Cache
}

func NewService(provider providers.SportsProvider, c *cache.Cache) *Service {
	return &Service{provider: provider, cache: c}
}

// Search finds teams by name. When league names a specific league the
// league roster is fetched and filtered by a case-insensitive name match.
// "all" returns the upstream search results unfiltered.
func (s *Service) Search(ctx context.Context, query, league string) ([]teams.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	league = strings.TrimSpace(league)

	if league == "" || strings.EqualFold(league, allLeagues) {
		found, err := cache.Fetch(ctx, s.cache, cache.KindSearch, cache.Key("team", strings.ToLower(query)), func(ctx context.Context) ([]teams.SearchResult, error) {
			return s.provider.SearchTeams(ctx, query)
		})
		if err != nil || league != "" {
			return found, err
		}
		// Without a league the upstream fuzzy matches are narrowed to names
		// that actually contain the term; "all" keeps them as returned.
		return filterByName(found, query), nil
	}

	roster, err := cache.Fetch(ctx, s.cache, cache.KindSearch, cache.Key("league", strings.ToLower(league)), func(ctx context.Context) ([]teams.SearchResult, error) {
		return s.provider.SearchLeague(ctx, league)
	})
	if err != nil {
		return nil, err
	}
	return filterByName(roster, query), nil
}

func filterByName(list []teams.SearchResult, query string) []teams.SearchResult {
	needle := strings.ToLower(query)
	out := make([]teams.SearchResult, 0, len(list))
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}
