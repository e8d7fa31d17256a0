package providers

import (
	"log/slog"
	"net/http"
	"time"
)

// pacedDoer enforces a minimum interval between outbound requests.
type pacedDoer struct {
	next     HTTPDoer
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
	name     string
}

// NewPacedDoer returns a doer that blocks until interval has elapsed since the
// previous request slot. A non-positive interval returns next unchanged.
func NewPacedDoer(next HTTPDoer, interval time.Duration, name string, logger *slog.Logger) HTTPDoer {
	if interval <= 0 {
		return next
	}
	if name == "" {
		name = fallbackProviderName
	}
	return &pacedDoer{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
		name:     name,
	}
}

func (p *pacedDoer) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "paced request canceled")
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.Do(req)
}

// Close stops the pacing ticker.
func (p *pacedDoer) Close() {
	p.ticker.Stop()
}
