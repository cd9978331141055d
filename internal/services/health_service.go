package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/newsverify/api-backend/internal/metrics"
	"github.com/newsverify/api-backend/internal/models"
	"github.com/newsverify/api-backend/internal/validators"
)

// ReadinessProbe reports whether the classification capability can serve.
type ReadinessProbe interface {
	Ready(ctx context.Context) (bool, error)
}

// HealthConfig describes what the health report advertises.
type HealthConfig struct {
	Service      string
	Version      string
	ProbeTimeout time.Duration
}

// HealthService assembles health reports
type HealthService struct {
	probe   ReadinessProbe
	metrics *metrics.Registry
	logger  *slog.Logger
	cfg     HealthConfig
	started time.Time
	now     func() time.Time
}

// NewHealthService creates a new health service. The uptime clock starts now.
func NewHealthService(probe ReadinessProbe, reg *metrics.Registry, logger *slog.Logger, cfg HealthConfig) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 3 * time.Second
	}
	return &HealthService{
		probe:   probe,
		metrics: reg,
		logger:  logger.With("component", "health_service"),
		cfg:     cfg,
		started: time.Now(),
		now:     time.Now,
	}
}

// Check probes the model and builds the report. A "not ready" answer is a
// healthy report with ModelLoaded false; only a broken probe is an error.
func (s *HealthService) Check(ctx context.Context) (*models.HealthResponse, error) {
	s.metrics.Inc(metrics.HealthChecksTotal)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	loaded, err := s.probe.Ready(ctx)
	if err != nil {
		s.logger.Error("readiness probe failed", "error", err)
		return nil, fmt.Errorf("readiness probe: %w", err)
	}
	if !loaded {
		s.metrics.Inc(metrics.ModelNotReadyTotal)
		s.logger.Warn("model not ready")
	}

	return &models.HealthResponse{
		Status:      models.StatusHealthy,
		ModelLoaded: loaded,
		Timestamp:   s.Timestamp(),
		Service:     s.cfg.Service,
		Version:     s.cfg.Version,
		System:      s.systemInfo(),
	}, nil
}

// Timestamp returns the current time in the report format.
func (s *HealthService) Timestamp() string {
	return validators.FormatUTCTimestamp(s.now())
}

func (s *HealthService) systemInfo() *models.SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &models.SystemInfo{
		GoVersion:     runtime.Version(),
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		UptimeSeconds: s.now().Sub(s.started).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
		Memory: models.MemoryUsage{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			HeapInuseBytes:  mem.HeapInuse,
		},
	}
}
