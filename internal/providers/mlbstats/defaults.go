package mlbstats

import (
	"fmt"
	"strconv"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func nameOr(v *idName, fallback string) string {
	if v == nil {
		return fallback
	}
	return stringOr(v.Name, fallback)
}

// teamRecord returns wins and losses, zero when upstream omits the record.
func teamRecord(r *recordResponse) (int, int) {
	if r == nil {
		return 0, 0
	}
	return r.Wins, r.Losses
}

func logoFor(id int) string {
	if id <= 0 {
		return ""
	}
	return teams.LogoURL(id)
}

func atoiOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func winLoss(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

// dateOf takes the YYYY-MM-DD prefix of an RFC3339 timestamp.
func dateOf(ts string) string {
	if len(ts) < 10 {
		return ""
	}
	return ts[:10]
}
