package standings

import "sort"

// Record is one division table.
type Record struct {
	League   string    `json:"league"`
	Division string    `json:"division"`
	Teams    []TeamRow `json:"teams"`
}

// TeamRow is a single team's line in a division table.
type TeamRow struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Rank              int    `json:"rank"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	WinningPercentage string `json:"winningPercentage"`
	GamesBack         string `json:"gamesBack"`
	HomeRecord        string `json:"homeRecord"`
	AwayRecord        string `json:"awayRecord"`
	Streak            string `json:"streak"`
	RunDifferential   int    `json:"runDifferential"`
}

// SortRows orders rows by ascending rank. Unranked rows (rank 0) go last.
func SortRows(rows []TeamRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Rank, rows[j].Rank
		if a == 0 || b == 0 {
			return a != 0 && b == 0
		}
		return a < b
	})
}

// SortAll sorts the rows of every record in place.
func SortAll(records []Record) {
	for i := range records {
		SortRows(records[i].Teams)
	}
}
