package providers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func newGet(t *testing.T, ctx context.Context) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://upstream.test/v1/teams", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

func TestRetryingDoerRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	inner := DoerFunc(func(*http.Request) (*http.Response, error) {
		if calls.Add(1) < 3 {
			return response(http.StatusBadGateway, "bad"), nil
		}
		return response(http.StatusOK, "{}"), nil
	})
	rec := metrics.NewRecorder()
	doer := NewRetryingDoerWithRNG(inner, slog.New(slog.NewTextHandler(io.Discard, nil)), rec, "mlbstats", 3, time.Millisecond, rand.New(rand.NewSource(1)))

	resp, err := doer.Do(newGet(t, context.Background()))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected eventual success, got %v %v", resp, err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
	if rec.ProviderCalls("mlbstats") != 3 || rec.ProviderErrors("mlbstats") != 2 {
		t.Fatalf("unexpected metrics %+v", rec.Snapshot("mlbstats"))
	}
}

func TestRetryingDoerSingleAttemptByDefault(t *testing.T) {
	var calls atomic.Int32
	inner := DoerFunc(func(*http.Request) (*http.Response, error) {
		calls.Add(1)
		return nil, errors.New("dial failed")
	})
	doer := NewRetryingDoer(inner, nil, nil, "", 0, 0)

	if _, err := doer.Do(newGet(t, context.Background())); err == nil {
		t.Fatal("expected transport error")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one attempt, got %d", calls.Load())
	}
}

func TestRetryingDoerDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	inner := DoerFunc(func(*http.Request) (*http.Response, error) {
		calls.Add(1)
		return response(http.StatusNotFound, "missing"), nil
	})
	doer := NewRetryingDoer(inner, nil, nil, "sportsdb", 3, time.Millisecond)

	resp, err := doer.Do(newGet(t, context.Background()))
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 passthrough, got %v %v", resp, err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected no retry on 404, got %d", calls.Load())
	}
}

func TestRetryingDoerRecordsRateLimit(t *testing.T) {
	inner := DoerFunc(func(*http.Request) (*http.Response, error) {
		resp := response(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})
	rec := metrics.NewRecorder()
	doer := NewRetryingDoer(inner, nil, rec, "mlbstats", 1, 0)

	if _, err := doer.Do(newGet(t, context.Background())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RateLimitHits("mlbstats") != 1 || rec.LastRetryAfter("mlbstats") != 7*time.Second {
		t.Fatalf("unexpected rate limit metrics %+v", rec.Snapshot("mlbstats"))
	}
}

func TestRetryingDoerStopsOnCancel(t *testing.T) {
	inner := DoerFunc(func(*http.Request) (*http.Response, error) {
		return response(http.StatusServiceUnavailable, ""), nil
	})
	doer := NewRetryingDoer(inner, nil, nil, "mlbstats", 5, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := doer.Do(newGet(t, ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestComputeDelay(t *testing.T) {
	d := NewRetryingDoerWithRNG(nil, nil, nil, "p", 3, 100*time.Millisecond, rand.New(rand.NewSource(42))).(*retryingDoer)
	if got := d.computeDelay(3*time.Second, 1); got != 3*time.Second {
		t.Fatalf("expected retry-after to win, got %s", got)
	}
	for attempt := 1; attempt <= 3; attempt++ {
		base := time.Duration(attempt) * 100 * time.Millisecond
		got := d.computeDelay(0, attempt)
		if got < base/2 || got >= base {
			t.Fatalf("attempt %d: delay %s outside [%s,%s)", attempt, got, base/2, base)
		}
	}
}

func TestPacedDoer(t *testing.T) {
	inner := DoerFunc(func(*http.Request) (*http.Response, error) {
		return response(http.StatusOK, "{}"), nil
	})
	if got := NewPacedDoer(inner, 0, "p", nil); got == nil {
		t.Fatal("expected passthrough doer")
	}

	paced := NewPacedDoer(inner, 5*time.Millisecond, "p", nil).(*pacedDoer)
	defer paced.Close()
	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := paced.Do(newGet(t, context.Background())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatal("expected requests to be paced")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := NewPacedDoer(inner, time.Hour, "p", nil).(*pacedDoer)
	defer slow.Close()
	if _, err := slow.Do(newGet(t, ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}

	empty := &pacedDoer{ticker: time.NewTicker(time.Hour)}
	defer empty.Close()
	if _, err := empty.Do(newGet(t, context.Background())); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
