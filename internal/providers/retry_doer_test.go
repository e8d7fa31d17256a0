package providers

import (
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/metrics"
)

// flakeyDoer fails the first failures calls with status (or a transport error when zero).
type flakeyDoer struct {
	failures int
	status   int
	header   http.Header
	calls    int
}

func (f *flakeyDoer) Do(req *http.Request) (*http.Response, error) {
	f.calls++
	if f.calls <= f.failures {
		if f.status == 0 {
			return nil, errors.New("boom")
		}
		return &http.Response{StatusCode: f.status, Header: f.header, Body: http.NoBody, Request: req}, nil
	}
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
}

func newRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "http://upstream/api/v1/teams", nil)
}

func TestRetryingDoerStopsAfterMaxAttempts(t *testing.T) {
	fd := &flakeyDoer{failures: 5, status: http.StatusBadGateway}
	rd := NewRetryingDoer(fd, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond)

	resp, err := rd.Do(newRequest())
	if err != nil {
		t.Fatalf("expected final response, got error %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected last 502 to surface, got %d", resp.StatusCode)
	}
	if fd.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fd.calls)
	}
}

func TestRetryingDoerUsesCustomBackoff(t *testing.T) {
	fd := &flakeyDoer{failures: 1}
	rd := NewRetryingDoerWithRNG(fd, nil, metrics.NewRecorder(), "flakey", 2, time.Hour, rand.New(rand.NewSource(1))).(*retryingDoer)

	calls := 0
	rd.backoffFn = func(attempt int) time.Duration {
		calls++
		return 0
	}

	if _, err := rd.Do(newRequest()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected custom backoff to be used once, got %d", calls)
	}
}
