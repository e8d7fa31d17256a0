package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/search"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/app/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/cache"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/config"
	httpserver "github.com/preston-bernstein/mlb-scoreboard-service/internal/http"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/poller"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/store"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	cache         *cache.Cache
	ledger        *store.StatusLedger
	services      handlers.Services
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closers       []func()
}

// New constructs a server with live providers and the configured cache.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, nil, nil)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, mlb providers.MLBProvider, sports providers.SportsProvider) *Server {
	return newServerWithMetrics(cfg, logger, mlb, sports, nil)
}

// newServerWithMetrics builds the full graph. Nil providers are selected from cfg.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, mlb providers.MLBProvider, sports providers.SportsProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	var closers []func()
	if mlb == nil || sports == nil {
		factory := newProviderFactory(logger, recorder)
		builtMLB, builtSports := factory.build(cfg)
		if mlb == nil {
			mlb = builtMLB
		}
		if sports == nil {
			sports = builtSports
		}
		closers = append(closers, factory.Close)
	}

	c, closeCache := buildCache(cfg.Cache, logger, recorder)
	closers = append(closers, closeCache)

	ledger := store.NewStatusLedger()
	svc := buildServices(cfg, logger, mlb, sports, c, ledger)
	plr := poller.New(svc.Games, c, ledger, logger, recorder, poller.Config{
		Interval:  cfg.Refresh.Interval,
		Retention: cfg.Refresh.LedgerRetention,
	})
	httpSrv := buildHTTPServer(cfg, svc, c, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		cache:         c,
		ledger:        ledger,
		services:      svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		closers:       closers,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, closers ...func()) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		closers:    closers,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger, mlb providers.MLBProvider, sports providers.SportsProvider, c *cache.Cache, ledger *store.StatusLedger) handlers.Services {
	loc := timeutil.LoadLocation(cfg.MLB.Timezone)
	return handlers.Services{
		Teams:     teams.NewService(mlb, c),
		Games:     games.NewService(mlb, c, ledger, loc),
		Standings: standings.NewService(mlb, c, loc),
		Leaders:   leaders.NewService(mlb, c, loc),
		Search:    search.NewService(sports, c),
		Scores:    scores.NewService(sports, c, logger),
	}
}

func buildHTTPServer(cfg config.Config, svc handlers.Services, c *cache.Cache, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(svc, logger, statusFn,
		handlers.WithPushInterval(cfg.HTTP.DevicePushInterval),
		handlers.WithAllowedOrigins(cfg.HTTP.CORSOrigins),
	)

	var admin *handlers.AdminHandler
	if cfg.HTTP.AdminToken != "" {
		admin = handlers.NewAdminHandler(c, cfg.HTTP.AdminToken, logger)
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handler,
		Admin:       admin,
		SPA:         handlers.NewSPA(cfg.StaticDir, cfg.IsProduction(), logger),
		Limiter:     middleware.NewLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst),
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Upstream pacing tickers and the cache connection go last; in-flight
	// requests may still be using them until Shutdown returns.
	for _, c := range s.closers {
		c()
	}
	s.closers = nil

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
