package favorites

import (
	"testing"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

func TestAddIsIdempotent(t *testing.T) {
	s := NewSet(teams.Team{ID: 147, Name: "New York Yankees"})
	if s.Add(teams.Team{ID: 147, Name: "Yankees again"}) {
		t.Fatal("expected duplicate add to be rejected")
	}
	if s.Len() != 1 || s.Teams()[0].Name != "New York Yankees" {
		t.Fatalf("expected original favorite kept, got %+v", s.Teams())
	}
	if !s.Add(teams.Team{ID: 111}) || s.Len() != 2 {
		t.Fatal("expected new team added")
	}
}

func TestRemoveAndContains(t *testing.T) {
	s := FromIDs([]int{1, 2, 3})
	if !s.Remove(2) || s.Remove(2) {
		t.Fatal("expected single successful remove")
	}
	if s.Contains(2) || !s.Contains(3) || s.Len() != 2 {
		t.Fatalf("unexpected set %+v", s.Teams())
	}
}

func game(id, home, away int, status games.Status, start string) games.Game {
	return games.Game{
		ID:             id,
		AbstractStatus: status,
		StartTime:      start,
		HomeTeam:       games.TeamScore{ID: home},
		AwayTeam:       games.TeamScore{ID: away},
	}
}

func TestOrderFavoritesThenStatus(t *testing.T) {
	list := []games.Game{
		game(1, 10, 11, games.StatusFinal, "2024-04-01T17:00:00Z"),
		game(2, 12, 13, games.StatusPreview, "2024-04-01T23:00:00Z"),
		game(3, 14, 15, games.StatusLive, "2024-04-01T20:00:00Z"),
		game(4, 147, 16, games.StatusFinal, "2024-04-01T17:00:00Z"),
		game(5, 17, 18, games.StatusPreview, "2024-04-01T19:00:00Z"),
		game(6, 19, 147, games.StatusPreview, "2024-04-02T00:00:00Z"),
	}
	got := Order(list, FromIDs([]int{147}))

	want := []int{6, 4, 3, 5, 2, 1}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: want game %d, got %d (order %+v)", i, id, got[i].ID, ids(got))
		}
	}
	if list[0].ID != 1 {
		t.Fatal("expected input left untouched")
	}
}

func TestOrderWithoutFavorites(t *testing.T) {
	got := Order([]games.Game{
		game(1, 1, 2, games.StatusFinal, ""),
		game(2, 3, 4, games.StatusLive, ""),
	}, nil)
	if got[0].ID != 2 {
		t.Fatalf("expected live first, got %v", ids(got))
	}
}

func TestFilterFavorites(t *testing.T) {
	list := []games.Game{game(1, 147, 2, games.StatusLive, ""), game(2, 3, 4, games.StatusLive, "")}
	got := FilterFavorites(list, FromIDs([]int{147}))
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected filter result %v", ids(got))
	}
	if len(FilterFavorites(list, nil)) != 0 {
		t.Fatal("expected empty result without favorites")
	}
	if StorageKey != "mlbFavoriteTeams" {
		t.Fatal("storage key changed")
	}
}

func ids(list []games.Game) []int {
	out := make([]int, len(list))
	for i, g := range list {
		out[i] = g.ID
	}
	return out
}
