package cache

import (
	"strings"
	"time"
)

// Kind is a resource namespace with its own TTL.
type Kind string

const (
	KindTeams     Kind = "teams"
	KindGames     Kind = "games"
	KindSchedule  Kind = "schedule"
	KindGame      Kind = "game"
	KindStandings Kind = "standings"
	KindLeaders   Kind = "leaders"
	KindSearch    Kind = "search"
	KindScores    Kind = "scores"
)

const keySeparator = ":"

// DefaultTTLs returns the freshness window for every kind.
func DefaultTTLs() map[Kind]time.Duration {
	return map[Kind]time.Duration{
		KindTeams:     24 * time.Hour,
		KindGames:     5 * time.Minute,
		KindSchedule:  5 * time.Minute,
		KindGame:      5 * time.Minute,
		KindStandings: time.Hour,
		KindLeaders:   time.Hour,
		KindSearch:    time.Hour,
		KindScores:    5 * time.Minute,
	}
}

// Key joins key parts deterministically. Empty parts are kept so that
// ("a", "", "b") and ("a", "b") never collide.
func Key(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

func fullKey(kind Kind, key string) string {
	return string(kind) + keySeparator + key
}

func kindOf(full string) Kind {
	if i := strings.Index(full, keySeparator); i >= 0 {
		return Kind(full[:i])
	}
	return Kind(full)
}
