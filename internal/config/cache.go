package config

import (
	"strings"
	"time"
)

// CacheConfig selects the cache backend and per-kind TTLs.
type CacheConfig struct {
	Backend    string
	RedisURL   string
	MaxEntries int
	TTLs       CacheTTLs
}

// CacheTTLs holds the freshness window of each resource kind.
type CacheTTLs struct {
	Teams     time.Duration
	Games     time.Duration
	Schedule  time.Duration
	Game      time.Duration
	Standings time.Duration
	Leaders   time.Duration
	Search    time.Duration
	Scores    time.Duration
}

// RefreshConfig controls the background refresher.
type RefreshConfig struct {
	Interval        time.Duration
	LedgerRetention time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:    strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)),
		RedisURL:   envOrDefault(envRedisURL, ""),
		MaxEntries: intEnvOrDefault(envCacheMaxEntries, defaultCacheMaxEntries),
		TTLs: CacheTTLs{
			Teams:     durationEnvOrDefault(envTTLTeams, defaultTTLTeams),
			Games:     durationEnvOrDefault(envTTLGames, defaultTTLGames),
			Schedule:  durationEnvOrDefault(envTTLSchedule, defaultTTLSchedule),
			Game:      durationEnvOrDefault(envTTLGame, defaultTTLGame),
			Standings: durationEnvOrDefault(envTTLStandings, defaultTTLStandings),
			Leaders:   durationEnvOrDefault(envTTLLeaders, defaultTTLLeaders),
			Search:    durationEnvOrDefault(envTTLSearch, defaultTTLSearch),
			Scores:    durationEnvOrDefault(envTTLScores, defaultTTLScores),
		},
	}
}

func loadRefresh() RefreshConfig {
	return RefreshConfig{
		Interval:        durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		LedgerRetention: durationEnvOrDefault(envLedgerRetention, defaultLedgerRetention),
	}
}
