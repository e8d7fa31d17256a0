package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/config"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

// providerFactory assembles providers over shared transport wrappers (pacing + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	closers []func()
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) *providerFactory {
	return &providerFactory{logger: logger, metrics: metrics}
}

func (f *providerFactory) build(cfg config.Config) (providers.MLBProvider, providers.SportsProvider) {
	return selectProviders(cfg, f.logger, func(name string) providers.HTTPDoer {
		return f.doer(name, cfg.Upstream)
	})
}

// doer builds the transport for one upstream. Each upstream gets its own
// pacing slot so a slow search never delays the schedule feed.
func (f *providerFactory) doer(name string, cfg config.UpstreamConfig) providers.HTTPDoer {
	base := providers.NewHTTPClient(cfg.Timeout)
	paced := providers.NewPacedDoer(base, cfg.MinInterval, name, f.logger)
	if c, ok := paced.(interface{ Close() }); ok {
		f.closers = append(f.closers, c.Close)
	}
	return providers.NewRetryingDoer(paced, f.logger, f.metrics, name, cfg.Attempts, 0)
}

// Close stops pacing tickers created by doer.
func (f *providerFactory) Close() {
	for _, c := range f.closers {
		c()
	}
	f.closers = nil
}
