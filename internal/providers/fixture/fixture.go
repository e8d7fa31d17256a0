package fixture

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/timeutil"
)

const providerName = "fixture"

var fixtureTeams = []teams.Team{
	{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS", League: "American League", Division: "American League East", Venue: "Fenway Park"},
	{ID: 147, Name: "New York Yankees", Abbreviation: "NYY", League: "American League", Division: "American League East", Venue: "Yankee Stadium"},
	{ID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD", League: "National League", Division: "National League West", Venue: "Dodger Stadium"},
	{ID: 137, Name: "San Francisco Giants", Abbreviation: "SF", League: "National League", Division: "National League West", Venue: "Oracle Park"},
}

// Provider returns static MLB and sports-database data for local development.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := make([]teams.Team, len(fixtureTeams))
	copy(out, fixtureTeams)
	for i := range out {
		out[i].LogoURL = teams.LogoURL(out[i].ID)
	}
	teams.SortByName(out)
	return out, nil
}

// FetchSchedule returns two games on date: one final, one scheduled.
func (p *Provider) FetchSchedule(ctx context.Context, date string) ([]games.Game, error) {
	_ = ctx
	day, err := timeutil.ParseDate(date)
	if err != nil {
		day = p.now().UTC().Truncate(24 * time.Hour)
		date = timeutil.FormatDate(day)
	}
	return []games.Game{
		{
			ID:             1001,
			Date:           date,
			StartTime:      day.Add(17 * time.Hour).Format(time.RFC3339),
			AbstractStatus: games.StatusFinal,
			DetailedState:  "Final",
			Inning:         9,
			InningState:    "End",
			Venue:          "Yankee Stadium",
			HomeTeam:       games.TeamScore{ID: 147, Name: "New York Yankees", Score: 5, Wins: 10, Losses: 4},
			AwayTeam:       games.TeamScore{ID: 111, Name: "Boston Red Sox", Score: 3, Wins: 7, Losses: 7},
		},
		{
			ID:             1002,
			Date:           date,
			StartTime:      day.Add(26 * time.Hour).Format(time.RFC3339),
			AbstractStatus: games.StatusPreview,
			DetailedState:  "Scheduled",
			Venue:          "Dodger Stadium",
			HomeTeam:       games.TeamScore{ID: 119, Name: "Los Angeles Dodgers", Wins: 11, Losses: 3},
			AwayTeam:       games.TeamScore{ID: 137, Name: "San Francisco Giants", Wins: 6, Losses: 8},
		},
	}, nil
}

// FetchTeamSchedule returns the fixture games on startDate that involve teamID.
func (p *Provider) FetchTeamSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]games.Game, error) {
	_ = endDate
	all, err := p.FetchSchedule(ctx, startDate)
	if err != nil {
		return nil, err
	}
	out := make([]games.Game, 0, len(all))
	for _, g := range all {
		if g.Involves(teamID) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (p *Provider) FetchGame(ctx context.Context, gameID int) (games.Detail, error) {
	list, _ := p.FetchSchedule(ctx, "")
	for _, g := range list {
		if g.ID != gameID {
			continue
		}
		return games.Detail{
			ID:             g.ID,
			Date:           g.Date,
			StartTime:      g.StartTime,
			AbstractStatus: g.AbstractStatus,
			DetailedState:  g.DetailedState,
			Venue:          g.Venue,
			Teams: games.DetailTeams{
				Home: games.DetailTeam{ID: g.HomeTeam.ID, Name: g.HomeTeam.Name, Score: g.HomeTeam.Score, Wins: g.HomeTeam.Wins, Losses: g.HomeTeam.Losses, CurrentBatters: []games.Batter{}},
				Away: games.DetailTeam{ID: g.AwayTeam.ID, Name: g.AwayTeam.Name, Score: g.AwayTeam.Score, Wins: g.AwayTeam.Wins, Losses: g.AwayTeam.Losses, CurrentBatters: []games.Batter{}},
			},
			Linescore: games.Linescore{CurrentInning: g.Inning, InningState: g.InningState, Innings: []games.Inning{}},
		}, nil
	}
	return games.Detail{}, &providers.StatusError{Provider: providerName, StatusCode: http.StatusNotFound, Body: "game not found"}
}

func (p *Provider) FetchStandings(ctx context.Context, season string) ([]standings.Record, error) {
	_, _ = ctx, season
	records := []standings.Record{
		{League: "American League", Division: "American League East", Teams: []standings.TeamRow{
			{ID: 111, Name: "Boston Red Sox", Rank: 2, Wins: 7, Losses: 7, WinningPercentage: ".500", GamesBack: "3.0", HomeRecord: "4-3", AwayRecord: "3-4", Streak: "L1", RunDifferential: -2},
			{ID: 147, Name: "New York Yankees", Rank: 1, Wins: 10, Losses: 4, WinningPercentage: ".714", GamesBack: "-", HomeRecord: "6-1", AwayRecord: "4-3", Streak: "W3", RunDifferential: 21},
		}},
		{League: "National League", Division: "National League West", Teams: []standings.TeamRow{
			{ID: 119, Name: "Los Angeles Dodgers", Rank: 1, Wins: 11, Losses: 3, WinningPercentage: ".786", GamesBack: "-", HomeRecord: "7-1", AwayRecord: "4-2", Streak: "W5", RunDifferential: 30},
			{ID: 137, Name: "San Francisco Giants", Rank: 2, Wins: 6, Losses: 8, WinningPercentage: ".429", GamesBack: "5.0", HomeRecord: "3-4", AwayRecord: "3-4", Streak: "L2", RunDifferential: -9},
		}},
	}
	standings.SortAll(records)
	return records, nil
}

func (p *Provider) FetchLeaders(ctx context.Context, def leaders.Definition, season string) (leaders.Board, error) {
	_ = ctx
	names := []string{"Aaron Judge", "Shohei Ohtani", "Mookie Betts", "Rafael Devers", "Logan Webb", "Gerrit Cole"}
	ids := []int{147, 119, 119, 111, 137, 147}
	board := leaders.Board{
		Category:    def.Category,
		DisplayName: def.DisplayName,
		Season:      season,
		Leaders:     make([]leaders.Entry, 0, leaders.MaxLeaders),
	}
	for i := 0; i < leaders.MaxLeaders; i++ {
		board.Leaders = append(board.Leaders, leaders.Entry{
			Rank:   i + 1,
			Player: leaders.Player{ID: 1000 + i, Name: names[i]},
			Team:   leaders.Team{ID: ids[i], Name: teamName(ids[i])},
			Value:  "10",
		})
	}
	return board, nil
}

func (p *Provider) SearchTeams(ctx context.Context, name string) ([]teams.SearchResult, error) {
	_ = ctx
	out := make([]teams.SearchResult, 0)
	for _, r := range p.searchResults() {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(name)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (p *Provider) SearchLeague(ctx context.Context, league string) ([]teams.SearchResult, error) {
	_ = ctx
	if !strings.EqualFold(league, "MLB") {
		return []teams.SearchResult{}, nil
	}
	return p.searchResults(), nil
}

// FetchTeamScores returns one upcoming and one completed event for the team.
func (p *Provider) FetchTeamScores(ctx context.Context, teamID string) ([]scores.Score, error) {
	_ = ctx
	today := p.now().UTC()
	opponent := scores.Side{ID: "999", Name: "Fixture Opponents"}
	self := scores.Side{ID: teamID, Name: "Team " + teamID}
	return []scores.Score{
		{
			ID:            "next-" + teamID,
			League:        "MLB",
			HomeTeam:      self,
			AwayTeam:      opponent,
			Status:        scores.StatusScheduled,
			ScheduledTime: today.Add(24 * time.Hour).Format("2006-01-02T15:04:05"),
		},
		{
			ID:            "last-" + teamID,
			League:        "MLB",
			HomeTeam:      scores.Side{ID: opponent.ID, Name: opponent.Name, Score: 2},
			AwayTeam:      scores.Side{ID: self.ID, Name: self.Name, Score: 4},
			Status:        scores.StatusCompleted,
			CompletedTime: timeutil.FormatDate(today.Add(-24 * time.Hour)),
		},
	}, nil
}

func (p *Provider) searchResults() []teams.SearchResult {
	out := make([]teams.SearchResult, 0, len(fixtureTeams))
	for _, t := range fixtureTeams {
		out = append(out, teams.SearchResult{
			ID:     t.Abbreviation,
			Name:   t.Name,
			League: "MLB",
			Logo:   teams.LogoURL(t.ID),
			Sport:  "Baseball",
		})
	}
	return out
}

func teamName(id int) string {
	for _, t := range fixtureTeams {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}
