package search

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/teststubs"
)

func TestSearchRequiresQuery(t *testing.T) {
	svc := NewService(&teststubs.StubSportsProvider{}, cache.New(nil))
	if _, err := svc.Search(context.Background(), "  ", "MLB"); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected empty query error, got %v", err)
	}
}

func TestSearchByNameWithoutLeague(t *testing.T) {
	stub := &teststubs.StubSportsProvider{Teams: []teams.SearchResult{{ID: "1", Name: "Arsenal"}, {ID: "2", Name: "New York Yankees"}}}
	svc := NewService(stub, cache.New(nil))

	got, err := svc.Search(context.Background(), "yank", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected name-filtered results without a league, got %+v", got)
	}

	for _, league := range []string{"all", "ALL"} {
		got, err := svc.Search(context.Background(), "yank", league)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected unfiltered results for league %q, got %+v", league, got)
		}
	}
	if stub.SearchCalls.Load() != 1 || stub.LeagueCalls.Load() != 0 {
		t.Fatalf("unexpected calls search=%d league=%d", stub.SearchCalls.Load(), stub.LeagueCalls.Load())
	}
}

func TestSearchWithinLeagueFilters(t *testing.T) {
	stub := &teststubs.StubSportsProvider{LeagueTeams: []teams.SearchResult{
		{ID: "1", Name: "New York Yankees"},
		{ID: "2", Name: "New York Mets"},
		{ID: "3", Name: "Boston Red Sox"},
	}}
	svc := NewService(stub, cache.New(nil))

	got, err := svc.Search(context.Background(), "NEW york", "MLB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two New York teams, got %+v", got)
	}
	got, _ = svc.Search(context.Background(), "red", "mlb")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected Red Sox, got %+v", got)
	}
	if stub.LeagueCalls.Load() != 1 {
		t.Fatalf("expected league roster cached, got %d calls", stub.LeagueCalls.Load())
	}
}
