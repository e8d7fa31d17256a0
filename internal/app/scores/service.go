package scores

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

const maxConcurrentTeams = 8

// Service aggregates per-team events. Each team is cached on its own so
// one team's freshness never depends on another's.
type Service struct {
	provider providers.SportsProvider
	cache    *cache.Cache
	logger   *slog.Logger
}

func NewService(provider providers.SportsProvider, c *cache.Cache, logger *slog.Logger) *Service {
	return &Service{provider: provider, cache: c, logger: logger}
}

// Scores returns the deduplicated events involving any of teamIDs.
// Teams whose fetch fails contribute nothing.
func (s *Service) Scores(ctx context.Context, teamIDs []string) []scores.Score {
	ids := uniqueIDs(teamIDs)
	perTeam := make([][]scores.Score, len(ids))

	var g errgroup.Group
	g.SetLimit(maxConcurrentTeams)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			list, err := cache.Fetch(ctx, s.cache, cache.KindScores, id, func(ctx context.Context) ([]scores.Score, error) {
				return s.provider.FetchTeamScores(ctx, id)
			})
			if err != nil {
				logging.Warn(logging.FromContext(ctx, s.logger), "team scores unavailable",
					slog.String(logging.FieldTeamID, id),
					"error", err,
				)
				return nil
			}
			perTeam[i] = list
			return nil
		})
	}
	_ = g.Wait()

	return collect(perTeam, ids)
}

// Device returns compact scores from cache only. It fails with
// scores.ErrNoCachedScores when no requested team has fresh entries.
func (s *Service) Device(ctx context.Context, teamIDs []string) ([]scores.DeviceScore, error) {
	ids := uniqueIDs(teamIDs)
	perTeam := make([][]scores.Score, 0, len(ids))
	for _, id := range ids {
		raw, fresh := s.cache.Get(ctx, cache.KindScores, id)
		if !fresh {
			continue
		}
		var list []scores.Score
		if err := json.Unmarshal(raw, &list); err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "cached scores undecodable",
				slog.String(logging.FieldTeamID, id),
				"error", err,
			)
			continue
		}
		perTeam = append(perTeam, list)
	}
	if len(perTeam) == 0 {
		return nil, scores.ErrNoCachedScores
	}

	merged := collect(perTeam, ids)
	out := make([]scores.DeviceScore, 0, len(merged))
	for _, sc := range merged {
		out = append(out, scores.ToDevice(sc))
	}
	return out, nil
}

func collect(perTeam [][]scores.Score, ids []string) []scores.Score {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var all []scores.Score
	for _, list := range perTeam {
		all = append(all, list...)
	}
	out := make([]scores.Score, 0, len(all))
	for _, sc := range scores.Dedupe(all) {
		if sc.Involves(wanted) {
			out = append(out, sc)
		}
	}
	return out
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
