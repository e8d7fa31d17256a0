package server

import "strings"

const (
	providerMLBStats = "mlbstats"
	providerFixture  = "fixture"

	upstreamMLB      = "mlbstats"
	upstreamSportsDB = "sportsdb"
)

// normalizeProviderName lower-cases the configured provider, defaulting to the MLB Stats API.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerMLBStats
	}
	return name
}
