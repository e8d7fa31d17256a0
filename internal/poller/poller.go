package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

const (
	defaultInterval  = 5 * time.Minute
	defaultRetention = 48 * time.Hour
)

// Warmer loads today's games through the cache.
type Warmer interface {
	Today(ctx context.Context) ([]games.Game, error)
}

// Sweeper drops expired cache entries.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// Pruner forgets games not seen since a cutoff.
type Pruner interface {
	Prune(before time.Time) int
}

// Poller warms today's games on an interval, sweeps the cache and
// prunes the status ledger.
type Poller struct {
	warmer    Warmer
	sweeper   Sweeper
	pruner    Pruner
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	retention time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Config tunes the refresh loop.
type Config struct {
	Interval  time.Duration
	Retention time.Duration
}

// New constructs a Poller. Sweeper and pruner may be nil.
func New(warmer Warmer, sweeper Sweeper, pruner Pruner, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Retention <= 0 {
		cfg.Retention = defaultRetention
	}
	return &Poller{
		warmer:    warmer,
		sweeper:   sweeper,
		pruner:    pruner,
		logger:    logger,
		metrics:   recorder,
		interval:  cfg.Interval,
		retention: cfg.Retention,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "refresher started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))

		// Warm on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "refresher stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "refresher stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	list, err := p.warmer.Today(ctx)
	p.metrics.RecordPollerCycle(time.Since(start), err)

	swept, pruned := p.housekeep(ctx)

	if err != nil {
		logging.Error(p.logger, "refresher warm failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "refresher warmed games",
		logging.FieldCount, len(list),
		"swept", swept,
		"pruned", pruned,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) housekeep(ctx context.Context) (int, int) {
	swept, pruned := 0, 0
	if p.sweeper != nil {
		swept = p.sweeper.Sweep(ctx)
	}
	if p.pruner != nil {
		pruned = p.pruner.Prune(p.now().Add(-p.retention))
	}
	return swept, pruned
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
