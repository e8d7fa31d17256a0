package providers

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultBackoff       = 200 * time.Millisecond
	fallbackProviderName = "provider"
)

type backoffFunc func(attempt int) time.Duration

// retryingDoer reissues idempotent requests on transport errors, 429s and 5xx.
type retryingDoer struct {
	inner        HTTPDoer
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingDoer wraps inner with retries. maxAttempts <= 0 means a single attempt.
func NewRetryingDoer(inner HTTPDoer, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) HTTPDoer {
	return NewRetryingDoerWithRNG(inner, logger, recorder, name, maxAttempts, backoff, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewRetryingDoerWithRNG is NewRetryingDoer with a caller-supplied jitter source.
func NewRetryingDoerWithRNG(inner HTTPDoer, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration, rng *rand.Rand) HTTPDoer {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = fallbackProviderName
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &retryingDoer{
		inner:        ResolveDoer(inner),
		logger:       logger,
		recorder:     recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rng,
	}
}

func (r *retryingDoer) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	for attempt := 1; ; attempt++ {
		start := time.Now()
		resp, err := r.inner.Do(req.Clone(ctx))
		r.recorder.RecordProviderAttempt(r.providerName, time.Since(start), attemptError(resp, err))

		retryable, retryAfter := classify(resp, err)
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			r.recorder.RecordRateLimit(r.providerName, retryAfter)
		}
		if !retryable || attempt >= r.maxAttempts {
			if retryable {
				logWithProvider(ctx, r.log(ctx), slog.LevelWarn, r.providerName, "upstream request failed",
					slog.Int("attempts", attempt),
					slog.String(logging.FieldPath, req.URL.Path),
				)
			}
			return resp, err
		}

		drain(resp)
		delay := r.computeDelay(retryAfter, attempt)
		logWithProvider(ctx, r.log(ctx), slog.LevelWarn, r.providerName, "upstream request retry",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// computeDelay honours Retry-After, otherwise jitters between half and full backoff.
func (r *retryingDoer) computeDelay(retryAfter time.Duration, attempt int) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 1 {
		return base
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(base - half)))
	r.rngMu.Unlock()
	return half + jitter
}

func (r *retryingDoer) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, r.logger)
}

func classify(resp *http.Response, err error) (bool, time.Duration) {
	if err != nil {
		return true, 0
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return true, parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
	case resp.StatusCode >= 500:
		return true, 0
	}
	return false, 0
}

func attemptError(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
