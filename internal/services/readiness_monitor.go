package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/newsverify/api-backend/internal/metrics"
)

// ReadinessMonitor probes the model periodically, publishes the result as
// the model_ready gauge and logs when readiness changes, so a backend
// going away shows up before a user hits it.
type ReadinessMonitor struct {
	probe    ReadinessProbe
	metrics  *metrics.Registry
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	known   bool
	ready   bool
	ticker  *time.Ticker
	done    chan struct{}
	stopped chan struct{}
}

// NewReadinessMonitor creates a new readiness monitor
func NewReadinessMonitor(probe ReadinessProbe, reg *metrics.Registry, logger *slog.Logger, interval, timeout time.Duration) *ReadinessMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &ReadinessMonitor{
		probe:    probe,
		metrics:  reg,
		logger:   logger.With("component", "readiness_monitor"),
		interval: interval,
		timeout:  timeout,
	}
}

// Start probes once immediately and then every interval until Stop
func (m *ReadinessMonitor) Start() {
	m.RunProbeNow()

	m.ticker = time.NewTicker(m.interval)
	m.done = make(chan struct{})
	m.stopped = make(chan struct{})

	go func() {
		defer close(m.stopped)
		for {
			select {
			case <-m.ticker.C:
				m.RunProbeNow()
			case <-m.done:
				return
			}
		}
	}()

	m.logger.Info("readiness monitor started", "interval", m.interval)
}

// Stop stops the monitor and waits for the loop to exit
func (m *ReadinessMonitor) Stop() {
	if m.ticker == nil {
		return
	}
	m.ticker.Stop()
	close(m.done)
	<-m.stopped
	m.ticker = nil
	m.logger.Info("readiness monitor stopped")
}

// RunProbeNow probes once and records the result
func (m *ReadinessMonitor) RunProbeNow() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	m.metrics.Inc(metrics.ReadinessProbesTotal)
	ready, err := m.probe.Ready(ctx)
	if err != nil {
		m.logger.Error("readiness probe failed", "error", err)
		ready = false
	}

	m.mu.Lock()
	changed := !m.known || m.ready != ready
	m.known = true
	m.ready = ready
	m.mu.Unlock()

	if ready {
		m.metrics.Set(metrics.ModelReady, 1)
	} else {
		m.metrics.Set(metrics.ModelReady, 0)
	}
	if !changed {
		return
	}
	m.metrics.Inc(metrics.ReadinessTransitionsTotal)
	if ready {
		m.logger.Info("model is ready")
	} else {
		m.logger.Warn("model is not ready")
	}
}
