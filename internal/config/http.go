package config

import "time"

// HTTPConfig controls the public HTTP surface.
type HTTPConfig struct {
	CORSOrigins        []string
	RateLimitRPS       float64 // zero disables the per-IP limiter
	RateLimitBurst     int
	DevicePushInterval time.Duration
	AdminToken         string
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		CORSOrigins:        listEnvOrDefault(envCORSOrigins, []string{"*"}),
		RateLimitRPS:       floatEnvOrDefault(envRateLimitRPS, 0),
		RateLimitBurst:     intEnvOrDefault(envRateLimitBurst, defaultRateLimitBurst),
		DevicePushInterval: durationEnvOrDefault(envDevicePush, defaultDevicePush),
		AdminToken:         envOrDefault(envAdminToken, ""),
	}
}
