package games

import "strings"

// Status is the abstract lifecycle state of a game.
type Status string

const (
	StatusPreview Status = "Preview"
	StatusLive    Status = "Live"
	StatusFinal   Status = "Final"
)

// Rank orders statuses along the only allowed direction of travel.
func (s Status) Rank() int {
	switch s {
	case StatusLive:
		return 1
	case StatusFinal:
		return 2
	default:
		return 0
	}
}

// Advance returns the later of s and next. A game never moves backward.
func (s Status) Advance(next Status) Status {
	if next.Rank() > s.Rank() {
		return next
	}
	if s == "" {
		return StatusPreview
	}
	return s
}

// ParseStatus maps an upstream abstract state to a Status; unknown values are Preview.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "live", "in progress":
		return StatusLive
	case "final", "game over", "completed early":
		return StatusFinal
	default:
		return StatusPreview
	}
}
