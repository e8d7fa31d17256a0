package scores

import "errors"

// ErrNoCachedScores signals that none of the requested teams have fresh cached scores.
var ErrNoCachedScores = errors.New("no cached scores available")

// Status values reported for aggregated events.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// Score is an event involving one of the tracked teams.
type Score struct {
	ID            string `json:"id"`
	League        string `json:"league"`
	HomeTeam      Side   `json:"homeTeam"`
	AwayTeam      Side   `json:"awayTeam"`
	Status        string `json:"status"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	CompletedTime string `json:"completedTime,omitempty"`
}

type Side struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Involves reports whether any of the team ids plays in the event.
func (s Score) Involves(ids map[string]struct{}) bool {
	if _, ok := ids[s.HomeTeam.ID]; ok {
		return true
	}
	_, ok := ids[s.AwayTeam.ID]
	return ok
}

// DeviceScore is the compact payload for constrained clients.
type DeviceScore struct {
	ID     string     `json:"id"`
	Home   DeviceSide `json:"home"`
	Away   DeviceSide `json:"away"`
	Status string     `json:"status"`
}

type DeviceSide struct {
	Team  string `json:"team"`
	Score int    `json:"score"`
}

// ToDevice converts a Score into its compact form.
func ToDevice(s Score) DeviceScore {
	return DeviceScore{
		ID:     s.ID,
		Home:   DeviceSide{Team: s.HomeTeam.Name, Score: s.HomeTeam.Score},
		Away:   DeviceSide{Team: s.AwayTeam.Name, Score: s.AwayTeam.Score},
		Status: s.Status,
	}
}

// Dedupe keeps the last record seen for each event id, preserving first-seen order.
func Dedupe(list []Score) []Score {
	index := make(map[string]int, len(list))
	out := make([]Score, 0, len(list))
	for _, s := range list {
		if i, ok := index[s.ID]; ok {
			out[i] = s
			continue
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	return out
}
