// Package cache wraps a classifier.Predictor with a read-through
// prediction cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/newsverify/api-backend/internal/classifier"
	"github.com/newsverify/api-backend/internal/metrics"
)

const keyPrefix = "newsverify:prediction:"

// Store persists predictions by key.
type Store interface {
	Get(ctx context.Context, key string) (classifier.Probabilities, bool, error)
	Set(ctx context.Context, key string, p classifier.Probabilities, ttl time.Duration) error
}

// keyed is implemented by predictors whose answers depend on more than
// their backend name.
type keyed interface {
	CacheKey() string
}

// CachingPredictor serves repeated texts from the store. Store failures
// are logged and the wrapped predictor is called as if the cache were
// absent.
type CachingPredictor struct {
	next    classifier.Predictor
	store   Store
	ttl     time.Duration
	metrics *metrics.Registry
	logger  *slog.Logger
}

var _ classifier.Predictor = (*CachingPredictor)(nil)

// NewCachingPredictor wraps next. metrics and logger may be nil.
func NewCachingPredictor(next classifier.Predictor, store Store, ttl time.Duration, reg *metrics.Registry, logger *slog.Logger) *CachingPredictor {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingPredictor{
		next:    next,
		store:   store,
		ttl:     ttl,
		metrics: reg,
		logger:  logger.With("component", "prediction_cache"),
	}
}

// Key returns the cache key of text for a backend.
func Key(backend, text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + backend + ":" + hex.EncodeToString(sum[:])
}

// Predict returns the cached prediction or asks the wrapped predictor and
// stores its answer. Failed predictions are never cached.
func (c *CachingPredictor) Predict(ctx context.Context, text string) (classifier.Probabilities, error) {
	key := Key(c.identity(), text)

	p, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.Inc(metrics.CacheErrorsTotal)
		c.logger.Warn("cache read failed", "error", err)
	case ok:
		c.metrics.Inc(metrics.CacheHitsTotal)
		return p, nil
	default:
		c.metrics.Inc(metrics.CacheMissesTotal)
	}

	p, err = c.next.Predict(ctx, text)
	if err != nil {
		return classifier.Probabilities{}, err
	}

	if err := c.store.Set(ctx, key, p, c.ttl); err != nil {
		c.metrics.Inc(metrics.CacheErrorsTotal)
		c.logger.Warn("cache write failed", "error", err)
	}
	return p, nil
}

func (c *CachingPredictor) identity() string {
	if k, ok := c.next.(keyed); ok {
		return k.CacheKey()
	}
	return c.next.Name()
}

// Ready delegates to the wrapped predictor. Cache health does not affect
// readiness.
func (c *CachingPredictor) Ready(ctx context.Context) (bool, error) {
	return c.next.Ready(ctx)
}

// Name returns the wrapped predictor's name.
func (c *CachingPredictor) Name() string {
	return c.next.Name()
}
