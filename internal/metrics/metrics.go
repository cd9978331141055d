// Package metrics holds in-process counters exposed at /api/metrics.
package metrics

import (
	"sync"
	"sync/atomic"
)

// Key names a counter.
type Key string

const (
	// Analyze endpoint
	AnalyzeRequestsTotal Key = "analyze_requests_total"
	AnalyzeRejectedTotal Key = "analyze_rejected_total"
	PredictionsRealTotal Key = "predictions_real_total"
	PredictionsFakeTotal Key = "predictions_fake_total"
	ModelFailuresTotal   Key = "model_failures_total"

	// Prediction cache
	CacheHitsTotal   Key = "cache_hits_total"
	CacheMissesTotal Key = "cache_misses_total"
	CacheErrorsTotal Key = "cache_errors_total"

	// Health endpoint
	HealthChecksTotal  Key = "health_checks_total"
	ModelNotReadyTotal Key = "model_not_ready_total"

	// Background readiness monitor
	ReadinessProbesTotal      Key = "readiness_probes_total"
	ReadinessTransitionsTotal Key = "readiness_transitions_total"
	// ModelReady is a gauge: 1 when the last background check passed.
	ModelReady Key = "model_ready"
)

// Known lists every predeclared key. They are present in a snapshot
// with a zero value before the first increment.
var Known = []Key{
	AnalyzeRequestsTotal,
	AnalyzeRejectedTotal,
	PredictionsRealTotal,
	PredictionsFakeTotal,
	ModelFailuresTotal,
	CacheHitsTotal,
	CacheMissesTotal,
	CacheErrorsTotal,
	HealthChecksTotal,
	ModelNotReadyTotal,
	ReadinessProbesTotal,
	ReadinessTransitionsTotal,
	ModelReady,
}

// Registry is a concurrent set of counters. Most only increase; gauges
// such as ModelReady are overwritten with Set.
type Registry struct {
	mu       sync.RWMutex
	counters map[Key]*atomic.Int64
}

// NewRegistry creates a registry with all Known keys at zero.
func NewRegistry() *Registry {
	r := &Registry{counters: make(map[Key]*atomic.Int64, len(Known))}
	for _, k := range Known {
		r.counters[k] = new(atomic.Int64)
	}
	return r
}

// Inc adds 1 to key.
func (r *Registry) Inc(key Key) {
	r.Add(key, 1)
}

// Add adds delta to key, creating the counter on first use. A nil
// registry ignores the call.
func (r *Registry) Add(key Key, delta int64) {
	if r == nil {
		return
	}
	r.counter(key).Add(delta)
}

// Set overwrites key with v.
func (r *Registry) Set(key Key, v int64) {
	if r == nil {
		return
	}
	r.counter(key).Store(v)
}

// Get returns the current value of key.
func (r *Registry) Get(key Key) int64 {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	c, ok := r.counters[key]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	return c.Load()
}

// Snapshot copies every counter into a fresh map.
func (r *Registry) Snapshot() map[string]int64 {
	if r == nil {
		return map[string]int64{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.counters))
	for k, c := range r.counters {
		out[string(k)] = c.Load()
	}
	return out
}

func (r *Registry) counter(key Key) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.counters[key]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.counters[key]; ok {
		return c
	}
	c = new(atomic.Int64)
	r.counters[key] = c
	return c
}
