// Package favorites orders and filters games around a user's favorite teams.
// The favorites themselves live in the browser; requests carry their ids.
package favorites

import (
	"sort"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

// StorageKey is the browser storage key the client persists favorites under.
const StorageKey = "mlbFavoriteTeams"

// Set is an ordered collection of favorite teams, unique by id.
type Set struct {
	teams []teams.Team
	index map[int]struct{}
}

// NewSet builds a Set, dropping duplicate ids.
func NewSet(list ...teams.Team) *Set {
	s := &Set{index: make(map[int]struct{}, len(list))}
	for _, t := range list {
		s.Add(t)
	}
	return s
}

// FromIDs builds a Set holding only team ids.
func FromIDs(ids []int) *Set {
	s := NewSet()
	for _, id := range ids {
		s.Add(teams.Team{ID: id})
	}
	return s
}

// Add inserts t unless a team with the same id is present. It reports whether t was added.
func (s *Set) Add(t teams.Team) bool {
	if _, ok := s.index[t.ID]; ok {
		return false
	}
	s.index[t.ID] = struct{}{}
	s.teams = append(s.teams, t)
	return true
}

// Remove drops the team with id. It reports whether one was removed.
func (s *Set) Remove(id int) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, t := range s.teams {
		if t.ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set) Contains(id int) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Set) Len() int { return len(s.teams) }

// Teams returns a copy of the favorites in insertion order.
func (s *Set) Teams() []teams.Team {
	return append([]teams.Team(nil), s.teams...)
}

// IsFavoriteGame reports whether either side of g is a favorite.
func (s *Set) IsFavoriteGame(g games.Game) bool {
	return s.Contains(g.HomeTeam.ID) || s.Contains(g.AwayTeam.ID)
}

// Order sorts games with favorites first. Within each group Live games lead,
// then Preview games by start time, then Final games.
func Order(list []games.Game, favs *Set) []games.Game {
	out := append([]games.Game(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if favs != nil {
			fa, fb := favs.IsFavoriteGame(a), favs.IsFavoriteGame(b)
			if fa != fb {
				return fa
			}
		}
		ra, rb := statusOrder(a.AbstractStatus), statusOrder(b.AbstractStatus)
		if ra != rb {
			return ra < rb
		}
		if a.AbstractStatus == games.StatusPreview {
			return a.StartTime < b.StartTime
		}
		return false
	})
	return out
}

// FilterFavorites keeps games involving a favorite.
func FilterFavorites(list []games.Game, favs *Set) []games.Game {
	out := make([]games.Game, 0, len(list))
	if favs == nil {
		return out
	}
	for _, g := range list {
		if favs.IsFavoriteGame(g) {
			out = append(out, g)
		}
	}
	return out
}

func statusOrder(s games.Status) int {
	switch s {
	case games.StatusLive:
		return 0
	case games.StatusFinal:
		return 2
	default:
		return 1
	}
}
