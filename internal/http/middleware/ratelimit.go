package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/http/requestutil"
)

const maxTrackedClients = 10000

// Limiter is a per-client token bucket. Each client may burst up to burst
// requests and then refills at rps tokens per second.
type Limiter struct {
	rps     float64
	burst   float64
	now     func() time.Time
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastFill time.Time
}

// NewLimiter returns nil when rps is not positive; a nil Limiter allows everything.
func NewLimiter(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		rps:     rps,
		burst:   float64(burst),
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether a request from client may proceed.
func (l *Limiter) Allow(client string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[client]
	if !ok {
		if len(l.buckets) >= maxTrackedClients {
			l.dropFullLocked(now)
		}
		l.buckets[client] = &bucket{tokens: l.burst - 1, lastFill: now}
		return true
	}

	b.tokens = l.refilled(b, now)
	b.lastFill = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RetryAfter is how long a client with an empty bucket waits for one token.
func (l *Limiter) RetryAfter() time.Duration {
	if l == nil {
		return 0
	}
	return time.Duration(math.Ceil(float64(time.Second) / l.rps))
}

// Middleware rejects over-limit clients with 429 and a Retry-After header.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(requestutil.ClientHost(r)) {
			secs := int(math.Ceil(l.RetryAfter().Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}` + "\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) refilled(b *bucket, now time.Time) float64 {
	elapsed := now.Sub(b.lastFill).Seconds()
	if elapsed <= 0 {
		return b.tokens
	}
	return math.Min(l.burst, b.tokens+elapsed*l.rps)
}

// dropFullLocked forgets clients whose bucket has refilled; they are
// indistinguishable from new clients.
func (l *Limiter) dropFullLocked(now time.Time) {
	for client, b := range l.buckets {
		if l.refilled(b, now) >= l.burst {
			delete(l.buckets, client)
		}
	}
}
