package sportsdb

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	IDTeam    string `json:"idTeam"`
	StrTeam   string `json:"strTeam"`
	StrLeague string `json:"strLeague"`
	StrBadge  string `json:"strBadge"`
	// Older payloads carry the badge under strTeamBadge.
	StrTeamBadge string `json:"strTeamBadge"`
	StrSport     string `json:"strSport"`
}

type nextEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type lastEventsResponse struct {
	Results []eventResponse `json:"results"`
}

type eventResponse struct {
	IDEvent      string  `json:"idEvent"`
	StrLeague    string  `json:"strLeague"`
	IDHomeTeam   string  `json:"idHomeTeam"`
	StrHomeTeam  string  `json:"strHomeTeam"`
	IDAwayTeam   string  `json:"idAwayTeam"`
	StrAwayTeam  string  `json:"strAwayTeam"`
	IntHomeScore *string `json:"intHomeScore"`
	IntAwayScore *string `json:"intAwayScore"`
	StrTimestamp string  `json:"strTimestamp"`
	DateEvent    string  `json:"dateEvent"`
}
