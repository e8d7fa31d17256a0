package sportsdb

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

func mapTeams(list []teamResponse) []teams.SearchResult {
	out := make([]teams.SearchResult, 0, len(list))
	for _, t := range list {
		out = append(out, teams.SearchResult{
			ID:     t.IDTeam,
			Name:   t.StrTeam,
			League: t.StrLeague,
			Logo:   stringOr(t.StrTeamBadge, t.StrBadge),
			Sport:  t.StrSport,
		})
	}
	return out
}

func mapUpcoming(e eventResponse) scores.Score {
	s := baseScore(e)
	s.Status = scores.StatusScheduled
	s.ScheduledTime = e.StrTimestamp
	return s
}

func mapCompleted(e eventResponse) scores.Score {
	s := baseScore(e)
	s.Status = scores.StatusCompleted
	s.HomeTeam.Score = scoreOrZero(e.IntHomeScore)
	s.AwayTeam.Score = scoreOrZero(e.IntAwayScore)
	s.CompletedTime = e.DateEvent
	return s
}

func baseScore(e eventResponse) scores.Score {
	return scores.Score{
		ID:       e.IDEvent,
		League:   e.StrLeague,
		HomeTeam: scores.Side{ID: e.IDHomeTeam, Name: e.StrHomeTeam},
		AwayTeam: scores.Side{ID: e.IDAwayTeam, Name: e.StrAwayTeam},
	}
}

// scoreOrZero parses a leading integer, treating absent or garbage values as 0.
func scoreOrZero(raw *string) int {
	if raw == nil {
		return 0
	}
	v := strings.TrimSpace(*raw)
	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return 0
	}
	return n
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
