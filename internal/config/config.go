package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Env       string
	StaticDir string
	Provider  string
	MLB       MLBConfig
	SportsDB  SportsDBConfig
	Upstream  UpstreamConfig
	Cache     CacheConfig
	Refresh   RefreshConfig
	HTTP      HTTPConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Env:       loadEnv(),
		StaticDir: envOrDefault(envStaticDir, defaultStaticDir),
		Provider:  strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		MLB:       loadMLB(),
		SportsDB:  loadSportsDB(),
		Upstream:  loadUpstream(),
		Cache:     loadCache(),
		Refresh:   loadRefresh(),
		HTTP:      loadHTTP(),
		Metrics:   loadMetrics(),
	}
}

// IsProduction reports whether the SPA shell should be served for unmatched routes.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, envProduction)
}

// APP_ENV wins over NODE_ENV so existing deploy scripts keep working.
func loadEnv() string {
	if v := envOrDefault(envAppEnv, ""); v != "" {
		return v
	}
	return envOrDefault(envNodeEnv, defaultAppEnv)
}
