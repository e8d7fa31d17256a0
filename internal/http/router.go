package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

// RouterConfig carries everything the router mounts. Admin, SPA and Limiter are optional.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	SPA         nethttp.Handler
	Limiter     *middleware.Limiter
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers every HTTP route on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(cfg.Logger, cfg.Recorder, next)
	})
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(cfg.CORSOrigins),
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	h := cfg.Handler
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(api chi.Router) {
		api.Use(cfg.Limiter.Middleware)

		api.Route("/mlb", func(mlb chi.Router) {
			mlb.Get("/teams", h.Teams)
			mlb.Get("/teams/{teamId}/games", h.TeamGames)
			mlb.Get("/games/today", h.GamesToday)
			mlb.Get("/games/date/{date}", h.GamesByDate)
			mlb.Get("/games/{gameId}", h.GameDetail)
			mlb.Get("/standings", h.Standings)
			mlb.Get("/leaders", h.Leaders)
		})
		api.Get("/search", h.Search)
		api.Post("/scores", h.Scores)
		api.Get("/device/scores", h.DeviceScores)
		api.Get("/device/scores/ws", h.DeviceScoresWS)
	})

	if cfg.Admin != nil {
		r.Route("/admin/cache", func(admin chi.Router) {
			admin.Post("/flush", cfg.Admin.FlushCache)
			admin.Get("/stats", cfg.Admin.CacheStats)
		})
	}

	spa := cfg.SPA
	if spa == nil {
		spa = handlers.NewSPA("", false, cfg.Logger)
	}
	r.NotFound(spa.ServeHTTP)
	return r
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
