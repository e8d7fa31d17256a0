package testutil

import (
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

// SampleGame returns a scheduled game between teams 147 and 111 on date.
func SampleGame(id int, date string) games.Game {
	return games.Game{
		ID:             id,
		Date:           date,
		StartTime:      date + "T23:05:00Z",
		AbstractStatus: games.StatusPreview,
		DetailedState:  "Scheduled",
		Venue:          "Yankee Stadium",
		HomeTeam:       games.TeamScore{ID: 147, Name: "New York Yankees", Wins: 10, Losses: 5},
		AwayTeam:       games.TeamScore{ID: 111, Name: "Boston Red Sox", Wins: 7, Losses: 8},
	}
}

// SampleTeam returns a team fixture with the default logo.
func SampleTeam(id int, name string) teams.Team {
	return teams.Team{
		ID:           id,
		Name:         name,
		Abbreviation: "TST",
		League:       "American League",
		Division:     "American League East",
		Venue:        "Test Park",
		LogoURL:      teams.LogoURL(id),
	}
}

// SampleScore returns a completed event between home and away.
func SampleScore(id, home, away string) scores.Score {
	return scores.Score{
		ID:            id,
		League:        "MLB",
		HomeTeam:      scores.Side{ID: home, Name: "Team " + home, Score: 3},
		AwayTeam:      scores.Side{ID: away, Name: "Team " + away, Score: 2},
		Status:        scores.StatusCompleted,
		CompletedTime: "2024-04-01",
	}
}
