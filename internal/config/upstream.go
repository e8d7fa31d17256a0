package config

import "time"

// MLBConfig controls how we talk to the MLB Stats API.
type MLBConfig struct {
	BaseURL  string
	Timezone string
}

// SportsDBConfig controls how we talk to TheSportsDB.
type SportsDBConfig struct {
	BaseURL string
}

// UpstreamConfig is shared by every outbound client.
type UpstreamConfig struct {
	Timeout     time.Duration
	Attempts    int
	MinInterval time.Duration // zero disables pacing
}

func loadMLB() MLBConfig {
	return MLBConfig{
		BaseURL:  envOrDefault(envMLBBaseURL, defaultMLBBaseURL),
		Timezone: envOrDefault(envMLBTimezone, defaultMLBTimezone),
	}
}

func loadSportsDB() SportsDBConfig {
	return SportsDBConfig{
		BaseURL: envOrDefault(envSportsDBBaseURL, defaultSportsDBBaseURL),
	}
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Timeout:     durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		Attempts:    intEnvOrDefault(envUpstreamAttempts, defaultUpstreamAttempts),
		MinInterval: durationEnvOrDefault(envUpstreamInterval, 0),
	}
}
