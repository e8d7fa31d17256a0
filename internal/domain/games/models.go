package games

// TeamScore is one side of a game in list views.
type TeamScore struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Game is the list-view game shape served by the dashboard.
type Game struct {
	ID             int       `json:"id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	AbstractStatus Status    `json:"abstractStatus"`
	DetailedState  string    `json:"detailedState"`
	Inning         int       `json:"inning"`
	InningState    string    `json:"inningState"`
	Venue          string    `json:"venue"`
	HomeTeam       TeamScore `json:"homeTeam"`
	AwayTeam       TeamScore `json:"awayTeam"`
}

// Involves reports whether the team plays in the game.
func (g Game) Involves(teamID int) bool {
	return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID
}

// FilterByDate keeps games whose official date matches date.
func FilterByDate(list []Game, date string) []Game {
	out := make([]Game, 0, len(list))
	for _, g := range list {
		if g.Date == date {
			out = append(out, g)
		}
	}
	return out
}
