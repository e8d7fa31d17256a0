package providers

import (
	"context"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

// TeamProvider fetches normalized MLB teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// GameProvider fetches schedules and single-game feeds.
// Dates are YYYY-MM-DD strings already validated by the caller.
type GameProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]games.Game, error)
	FetchTeamSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]games.Game, error)
	FetchGame(ctx context.Context, gameID int) (games.Detail, error)
}

// StandingsProvider fetches division standings for a season.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, season string) ([]standings.Record, error)
}

// LeadersProvider fetches a category leaderboard for a season.
type LeadersProvider interface {
	FetchLeaders(ctx context.Context, def leaders.Definition, season string) (leaders.Board, error)
}

// MLBProvider combines every MLB capability.
type MLBProvider interface {
	TeamProvider
	GameProvider
	StandingsProvider
	LeadersProvider
}

// SportsProvider covers the generic sports database used for search and scores.
type SportsProvider interface {
	SearchTeams(ctx context.Context, name string) ([]teams.SearchResult, error)
	SearchLeague(ctx context.Context, league string) ([]teams.SearchResult, error)
	FetchTeamScores(ctx context.Context, teamID string) ([]scores.Score, error)
}
