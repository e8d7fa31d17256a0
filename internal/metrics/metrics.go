package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits      int
	misses    int
	loads     int
	evictions int
}

// Recorder captures in-memory metrics about provider calls and cache usage,
// forwarding to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	cache map[string]*cacheStats
	otel  *otelInstruments
}

// NewRecorder returns a Recorder without OpenTelemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		cache: make(map[string]*cacheStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordCacheLookup counts a hit or miss for a cache kind.
func (r *Recorder) RecordCacheLookup(kind string, hit bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureCacheStatsLocked(kind)
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCacheLookup(kind, hit)
	}
}

// RecordCacheLoad tracks an upstream load performed on a cache miss.
func (r *Recorder) RecordCacheLoad(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureCacheStatsLocked(kind).loads++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCacheLoad(kind, duration, err)
	}
}

// RecordCacheEvictions tracks entries removed by a sweep or size bound.
func (r *Recorder) RecordCacheEvictions(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.ensureCacheStatsLocked(kind).evictions += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCacheEvictions(kind, n)
	}
}

// CacheSnapshot is a copy of the counters for one cache kind.
type CacheSnapshot struct {
	Hits      int
	Misses    int
	Loads     int
	Evictions int
}

// Cache returns the counters recorded for a cache kind.
func (r *Recorder) Cache(kind string) CacheSnapshot {
	if r == nil {
		return CacheSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.cache[kind]
	if !ok {
		return CacheSnapshot{}
	}
	return CacheSnapshot{
		Hits:      stats.hits,
		Misses:    stats.misses,
		Loads:     stats.loads,
		Evictions: stats.evictions,
	}
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureCacheStatsLocked(kind string) *cacheStats {
	stats, ok := r.cache[kind]
	if !ok {
		stats = &cacheStats{}
		r.cache[kind] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
