package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

var (
	_ providers.MLBProvider    = (*Provider)(nil)
	_ providers.SportsProvider = (*Provider)(nil)
)

func fixedProvider() *Provider {
	p := New()
	p.now = func() time.Time { return time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestFetchScheduleUsesRequestedDate(t *testing.T) {
	p := fixedProvider()
	list, err := p.FetchSchedule(context.Background(), "2024-05-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 games, got %d", len(list))
	}
	for _, g := range list {
		if g.Date != "2024-05-10" {
			t.Fatalf("expected requested date, got %s", g.Date)
		}
	}
	if list[0].AbstractStatus != games.StatusFinal || list[0].StartTime != "2024-05-10T17:00:00Z" {
		t.Fatalf("unexpected first game %+v", list[0])
	}

	fallback, _ := p.FetchSchedule(context.Background(), "bogus")
	if fallback[0].Date != "2024-04-01" {
		t.Fatalf("expected clock date fallback, got %s", fallback[0].Date)
	}
}

func TestFetchTeamScheduleFiltersTeam(t *testing.T) {
	list, _ := fixedProvider().FetchTeamSchedule(context.Background(), 147, "2024-04-01", "2024-04-20")
	if len(list) != 1 || !list[0].Involves(147) {
		t.Fatalf("expected only the Yankees game, got %+v", list)
	}
}

func TestFetchGame(t *testing.T) {
	p := fixedProvider()
	d, err := p.FetchGame(context.Background(), 1001)
	if err != nil || d.Teams.Home.Score != 5 {
		t.Fatalf("unexpected detail %+v %v", d, err)
	}
	if _, err := p.FetchGame(context.Background(), 42); !providers.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTeamsStandingsLeaders(t *testing.T) {
	p := fixedProvider()
	list, _ := p.FetchTeams(context.Background())
	if len(list) != 4 || list[0].Name != "Boston Red Sox" || list[0].LogoURL == "" {
		t.Fatalf("unexpected teams %+v", list)
	}

	records, _ := p.FetchStandings(context.Background(), "2024")
	if records[0].Teams[0].Rank != 1 {
		t.Fatalf("expected sorted standings, got %+v", records[0].Teams)
	}

	def, _ := leaders.Lookup("homeRuns")
	board, _ := p.FetchLeaders(context.Background(), def, "2024")
	if len(board.Leaders) != leaders.MaxLeaders || board.DisplayName != "Home Runs" {
		t.Fatalf("unexpected board %+v", board)
	}
}

func TestSearchAndScores(t *testing.T) {
	p := fixedProvider()
	if got, _ := p.SearchTeams(context.Background(), "yank"); len(got) != 1 {
		t.Fatalf("expected one match, got %+v", got)
	}
	if got, _ := p.SearchLeague(context.Background(), "NFL"); len(got) != 0 {
		t.Fatalf("expected no NFL teams, got %+v", got)
	}
	if got, _ := p.SearchLeague(context.Background(), "mlb"); len(got) != 4 {
		t.Fatalf("expected all teams, got %+v", got)
	}

	list, _ := p.FetchTeamScores(context.Background(), "133602")
	if len(list) != 2 || list[0].Status != scores.StatusScheduled || list[1].Status != scores.StatusCompleted {
		t.Fatalf("unexpected scores %+v", list)
	}
	if list[1].CompletedTime != "2024-03-31" {
		t.Fatalf("unexpected completed time %s", list[1].CompletedTime)
	}
}
