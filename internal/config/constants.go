package config

import "time"

const (
	envPort      = "PORT"
	envAppEnv    = "APP_ENV"
	envNodeEnv   = "NODE_ENV"
	envStaticDir = "STATIC_DIR"
	envProvider  = "PROVIDER"

	envMLBBaseURL      = "MLB_BASE_URL"
	envMLBTimezone     = "MLB_TIMEZONE"
	envSportsDBBaseURL = "SPORTSDB_BASE_URL"

	envUpstreamTimeout  = "UPSTREAM_TIMEOUT"
	envUpstreamAttempts = "UPSTREAM_RETRY_ATTEMPTS"
	envUpstreamInterval = "UPSTREAM_MIN_INTERVAL"

	envCacheBackend    = "CACHE_BACKEND"
	envRedisURL        = "REDIS_URL"
	envCacheMaxEntries = "CACHE_MAX_ENTRIES"
	envTTLTeams        = "CACHE_TTL_TEAMS"
	envTTLGames        = "CACHE_TTL_GAMES"
	envTTLSchedule     = "CACHE_TTL_SCHEDULE"
	envTTLGame         = "CACHE_TTL_GAME"
	envTTLStandings    = "CACHE_TTL_STANDINGS"
	envTTLLeaders      = "CACHE_TTL_LEADERS"
	envTTLSearch       = "CACHE_TTL_SEARCH"
	envTTLScores       = "CACHE_TTL_SCORES"

	envRefreshInterval = "REFRESH_INTERVAL"
	envLedgerRetention = "LEDGER_RETENTION"

	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envRateLimitRPS   = "RATE_LIMIT_RPS"
	envRateLimitBurst = "RATE_LIMIT_BURST"
	envDevicePush     = "DEVICE_PUSH_INTERVAL"
	envAdminToken     = "ADMIN_TOKEN"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envProduction = "production"

	defaultPort      = "5000"
	defaultAppEnv    = "development"
	defaultStaticDir = "client/build"
	defaultProvider  = "mlbstats"

	defaultMLBBaseURL      = "https://statsapi.mlb.com/api"
	defaultMLBTimezone     = "America/New_York"
	defaultSportsDBBaseURL = "https://www.thesportsdb.com/api/v1/json/3"

	defaultUpstreamTimeout = 10 * time.Second
	// One attempt: upstream failures surface to the caller instead of being retried.
	defaultUpstreamAttempts = 1

	defaultCacheBackend    = "memory"
	defaultCacheMaxEntries = 1000
	defaultTTLTeams        = 24 * time.Hour
	defaultTTLGames        = 5 * time.Minute
	defaultTTLSchedule     = 5 * time.Minute
	defaultTTLGame         = 5 * time.Minute
	defaultTTLStandings    = time.Hour
	defaultTTLLeaders      = time.Hour
	defaultTTLSearch       = time.Hour
	defaultTTLScores       = 5 * time.Minute

	defaultRefreshInterval = 5 * time.Minute
	defaultLedgerRetention = 48 * time.Hour

	defaultRateLimitBurst = 20
	defaultDevicePush     = 30 * time.Second

	defaultMetricsPort = "9090"
	defaultServiceName = "mlb-scoreboard-service"
)
