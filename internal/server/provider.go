package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/config"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers/mlbstats"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers/sportsdb"
)

// selectProviders picks the MLB and sports providers. doerFor returns the
// transport for a named upstream and is only consulted for live providers.
func selectProviders(cfg config.Config, logger *slog.Logger, doerFor func(name string) providers.HTTPDoer) (providers.MLBProvider, providers.SportsProvider) {
	switch name := normalizeProviderName(cfg.Provider); name {
	case providerFixture:
		fx := fixture.New()
		return fx, fx
	case providerMLBStats:
		mlb := mlbstats.NewClient(mlbstats.Config{
			BaseURL: cfg.MLB.BaseURL,
			Doer:    doerFor(upstreamMLB),
			Logger:  logger,
		})
		sports := sportsdb.NewClient(sportsdb.Config{
			BaseURL: cfg.SportsDB.BaseURL,
			Doer:    doerFor(upstreamSportsDB),
			Logger:  logger,
		})
		return mlb, sports
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, name)
		fx := fixture.New()
		return fx, fx
	}
}
