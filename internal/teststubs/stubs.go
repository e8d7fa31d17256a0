package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

// StubMLBProvider is a test double for providers.MLBProvider.
// Each method counts its calls so tests can assert on upstream traffic.
type StubMLBProvider struct {
	Teams     []teams.Team
	Games     []games.Game
	Detail    games.Detail
	Standings []standings.Record
	Board     leaders.Board
	Err       error
	Notify    chan struct{}

	TeamCalls      atomic.Int32
	ScheduleCalls  atomic.Int32
	TeamSchedCalls atomic.Int32
	GameCalls      atomic.Int32
	StandingsCalls atomic.Int32
	LeaderCalls    atomic.Int32

	mu       sync.Mutex
	LastArgs []string
}

func (s *StubMLBProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.notify()
	s.TeamCalls.Add(1)
	return s.Teams, s.Err
}

func (s *StubMLBProvider) FetchSchedule(ctx context.Context, date string) ([]games.Game, error) {
	_ = ctx
	s.notify()
	s.record(date)
	s.ScheduleCalls.Add(1)
	return s.Games, s.Err
}

func (s *StubMLBProvider) FetchTeamSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]games.Game, error) {
	_, _ = ctx, teamID
	s.record(startDate, endDate)
	s.TeamSchedCalls.Add(1)
	return s.Games, s.Err
}

func (s *StubMLBProvider) FetchGame(ctx context.Context, gameID int) (games.Detail, error) {
	_, _ = ctx, gameID
	s.GameCalls.Add(1)
	return s.Detail, s.Err
}

func (s *StubMLBProvider) FetchStandings(ctx context.Context, season string) ([]standings.Record, error) {
	_ = ctx
	s.record(season)
	s.StandingsCalls.Add(1)
	return s.Standings, s.Err
}

func (s *StubMLBProvider) FetchLeaders(ctx context.Context, def leaders.Definition, season string) (leaders.Board, error) {
	_ = ctx
	s.record(def.Upstream, season)
	s.LeaderCalls.Add(1)
	board := s.Board
	board.Category = def.Category
	board.DisplayName = def.DisplayName
	board.Season = season
	return board, s.Err
}

// Args returns the arguments of the most recent recorded call.
func (s *StubMLBProvider) Args() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.LastArgs...)
}

func (s *StubMLBProvider) record(args ...string) {
	s.mu.Lock()
	s.LastArgs = args
	s.mu.Unlock()
}

func (s *StubMLBProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case s.Notify <- struct{}{}:
	default:
	}
}

// StubSportsProvider is a test double for providers.SportsProvider.
type StubSportsProvider struct {
	Teams       []teams.SearchResult
	LeagueTeams []teams.SearchResult
	Scores      map[string][]scores.Score
	ScoreErrs   map[string]error
	Err         error

	SearchCalls atomic.Int32
	LeagueCalls atomic.Int32
	ScoreCalls  atomic.Int32
}

func (s *StubSportsProvider) SearchTeams(ctx context.Context, name string) ([]teams.SearchResult, error) {
	_, _ = ctx, name
	s.SearchCalls.Add(1)
	return s.Teams, s.Err
}

func (s *StubSportsProvider) SearchLeague(ctx context.Context, league string) ([]teams.SearchResult, error) {
	_, _ = ctx, league
	s.LeagueCalls.Add(1)
	return s.LeagueTeams, s.Err
}

func (s *StubSportsProvider) FetchTeamScores(ctx context.Context, teamID string) ([]scores.Score, error) {
	_ = ctx
	s.ScoreCalls.Add(1)
	if err := s.ScoreErrs[teamID]; err != nil {
		return nil, err
	}
	return s.Scores[teamID], s.Err
}
