package games

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/store"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/timeutil"
)

const (
	scheduleLookbackDays  = -7
	scheduleLookaheadDays = 14
)

var (
	ErrInvalidDate  = errors.New("invalid date format (expected YYYY-MM-DD)")
	ErrInvalidRange = errors.New("endDate must not be before startDate")
)

// Service serves game lists and details through the cache and applies
// the status ledger so served statuses never move backward.
type Service struct {
	provider providers.GameProvider
	cache    *cache.Cache
	ledger   *store.StatusLedger
	loc      *time.Location
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs a Service. A nil ledger gets a fresh one and a nil
// location means UTC.
func NewService(provider providers.GameProvider, c *cache.Cache, ledger *store.StatusLedger, loc *time.Location, opts ...Option) *Service {
	if ledger == nil {
		ledger = store.NewStatusLedger()
	}
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		provider: provider,
		cache:    c,
		ledger:   ledger,
		loc:      loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TodayDate returns today's date in the service timezone.
func (s *Service) TodayDate() string {
	return timeutil.Today(s.now(), s.loc)
}

// Today returns today's games.
func (s *Service) Today(ctx context.Context) ([]games.Game, error) {
	return s.ByDate(ctx, s.TodayDate())
}

// ByDate returns games whose official date is date.
func (s *Service) ByDate(ctx context.Context, date string) ([]games.Game, error) {
	if !timeutil.IsDate(date) {
		return nil, ErrInvalidDate
	}
	list, err := cache.Fetch(ctx, s.cache, cache.KindGames, date, func(ctx context.Context) ([]games.Game, error) {
		return s.provider.FetchSchedule(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	return s.ledger.ApplyGames(games.FilterByDate(list, date), s.now()), nil
}

// TeamSchedule returns a team's games between startDate and endDate inclusive.
// Empty dates default to a week back and two weeks ahead of today.
func (s *Service) TeamSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]games.Game, error) {
	start, end, err := s.resolveRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	key := cache.Key(strconv.Itoa(teamID), start, end)
	list, err := cache.Fetch(ctx, s.cache, cache.KindSchedule, key, func(ctx context.Context) ([]games.Game, error) {
		return s.provider.FetchTeamSchedule(ctx, teamID, start, end)
	})
	if err != nil {
		return nil, err
	}
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		if g.Involves(teamID) {
			out = append(out, g)
		}
	}
	return s.ledger.ApplyGames(out, s.now()), nil
}

// Detail returns the box score view of one game.
func (s *Service) Detail(ctx context.Context, gameID int) (games.Detail, error) {
	detail, err := cache.Fetch(ctx, s.cache, cache.KindGame, strconv.Itoa(gameID), func(ctx context.Context) (games.Detail, error) {
		return s.provider.FetchGame(ctx, gameID)
	})
	if err != nil {
		return games.Detail{}, err
	}
	detail.AbstractStatus = s.ledger.Observe(detail.ID, detail.AbstractStatus, s.now())
	return detail, nil
}

func (s *Service) resolveRange(startDate, endDate string) (string, string, error) {
	today := s.TodayDate()
	if startDate == "" {
		startDate, _ = timeutil.ShiftDate(today, scheduleLookbackDays)
	}
	if endDate == "" {
		endDate, _ = timeutil.ShiftDate(today, scheduleLookaheadDays)
	}
	start, err := timeutil.ParseDate(startDate)
	if err != nil {
		return "", "", ErrInvalidDate
	}
	end, err := timeutil.ParseDate(endDate)
	if err != nil {
		return "", "", ErrInvalidDate
	}
	if end.Before(start) {
		return "", "", ErrInvalidRange
	}
	return startDate, endDate, nil
}
