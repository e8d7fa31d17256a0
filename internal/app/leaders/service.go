package leaders

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/timeutil"
)

// Service serves category leaderboards through the cache.
type Service struct {
	provider providers.LeadersProvider
	cache    *cache.Cache
	loc      *time.Location
	now      func() time.Time
}

func NewService(provider providers.LeadersProvider, c *cache.Cache, loc *time.Location) *Service {
	return &Service{provider: provider, cache: c, loc: loc, now: time.Now}
}

// Leaders returns at most five leaders for category. Unknown categories
// fail with leaders.ErrUnknownCategory before any upstream call.
func (s *Service) Leaders(ctx context.Context, category, season string) (leaders.Board, error) {
	def, err := leaders.Lookup(category)
	if err != nil {
		return leaders.Board{}, err
	}
	if season == "" {
		season = timeutil.Season(s.now(), s.loc)
	}
	board, err := cache.Fetch(ctx, s.cache, cache.KindLeaders, cache.Key(string(def.Category), season), func(ctx context.Context) (leaders.Board, error) {
		return s.provider.FetchLeaders(ctx, def, season)
	})
	if err != nil {
		return leaders.Board{}, err
	}
	board.Category = def.Category
	board.DisplayName = def.DisplayName
	if len(board.Leaders) > leaders.MaxLeaders {
		board.Leaders = board.Leaders[:leaders.MaxLeaders]
	}
	if board.Leaders == nil {
		board.Leaders = []leaders.Entry{}
	}
	return board, nil
}
