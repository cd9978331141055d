package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsverify/api-backend/internal/classifier"
	"github.com/newsverify/api-backend/internal/metrics"
	"github.com/newsverify/api-backend/internal/models"
	"github.com/newsverify/api-backend/internal/validators"
)

type fakePredictor struct {
	probs    classifier.Probabilities
	err      error
	block    bool
	ready    bool
	readyErr error
	lastText string
}

func (f *fakePredictor) Predict(ctx context.Context, text string) (classifier.Probabilities, error) {
	f.lastText = text
	if f.block {
		<-ctx.Done()
		return classifier.Probabilities{}, ctx.Err()
	}
	return f.probs, f.err
}

func (f *fakePredictor) Ready(ctx context.Context) (bool, error) {
	return f.ready, f.readyErr
}

func (f *fakePredictor) Name() string { return "fake" }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAnalysis(p classifier.Predictor, reg *metrics.Registry) *AnalysisService {
	return NewAnalysisService(p, reg, quietLogger(), AnalysisConfig{Timeout: time.Second, MaxTextLength: 50})
}

func TestAnalyze_Success(t *testing.T) {
	reg := metrics.NewRegistry()
	p := &fakePredictor{probs: classifier.Probabilities{Real: 0.8123, Fake: 0.1877}}

	resp, err := newAnalysis(p, reg).Analyze(context.Background(), &models.AnalysisRequest{Text: "  <p>Markets RALLY!</p> "})
	require.NoError(t, err)

	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, models.PredictionReal, resp.Prediction)
	assert.InDelta(t, 81.23, resp.RealProbability, 1e-9)
	assert.InDelta(t, 18.77, resp.FakeProbability, 1e-9)
	assert.Equal(t, resp.RealProbability, resp.Confidence)
	assert.Equal(t, "markets rally", p.lastText)
	assert.Equal(t, int64(1), reg.Get(metrics.PredictionsRealTotal))
}

func TestAnalyze_FakeAndTie(t *testing.T) {
	for _, probs := range []classifier.Probabilities{
		{Real: 0.2, Fake: 0.8},
		{Real: 0.5, Fake: 0.5},
	} {
		resp, err := newAnalysis(&fakePredictor{probs: probs}, nil).Analyze(context.Background(), &models.AnalysisRequest{Text: "text"})
		require.NoError(t, err)
		assert.Equal(t, models.PredictionFake, resp.Prediction)
		assert.Equal(t, resp.FakeProbability, resp.Confidence)
		assert.InDelta(t, 100, resp.RealProbability+resp.FakeProbability, 1e-9)
	}
}

func TestAnalyze_NormalizesBackendPercentages(t *testing.T) {
	p := &fakePredictor{probs: classifier.Probabilities{Real: 30, Fake: 70}}

	resp, err := newAnalysis(p, nil).Analyze(context.Background(), &models.AnalysisRequest{Text: "text"})
	require.NoError(t, err)
	assert.InDelta(t, 30, resp.RealProbability, 1e-9)
}

func TestAnalyze_SymbolsOnlyTextStillClassified(t *testing.T) {
	p := &fakePredictor{probs: classifier.Probabilities{Real: 0.4, Fake: 0.6}}

	_, err := newAnalysis(p, nil).Analyze(context.Background(), &models.AnalysisRequest{Text: " ?!? "})
	require.NoError(t, err)
	assert.Equal(t, "?!?", p.lastText)
}

func TestAnalyze_ValidationErrors(t *testing.T) {
	reg := metrics.NewRegistry()
	svc := newAnalysis(&fakePredictor{}, reg)

	for name, req := range map[string]*models.AnalysisRequest{
		"nil":      nil,
		"empty":    {Text: ""},
		"blank":    {Text: " \n\t "},
		"too long": {Text: strings.Repeat("a", 51)},
	} {
		_, err := svc.Analyze(context.Background(), req)
		var vErr *validators.ValidationError
		require.ErrorAs(t, err, &vErr, name)
		assert.Equal(t, "text", vErr.Field, name)
	}

	_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{Text: ""})
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validators.MsgNoTextProvided, vErr.Message)
	assert.Equal(t, int64(5), reg.Get(metrics.AnalyzeRejectedTotal))
}

func TestAnalyze_ModelUnavailable(t *testing.T) {
	reg := metrics.NewRegistry()
	p := &fakePredictor{err: classifier.ErrModelUnavailable}

	_, err := newAnalysis(p, reg).Analyze(context.Background(), &models.AnalysisRequest{Text: "text"})
	assert.ErrorIs(t, err, classifier.ErrModelUnavailable)
	assert.Equal(t, int64(1), reg.Get(metrics.ModelFailuresTotal))
}

func TestAnalyze_TimeoutIsModelUnavailable(t *testing.T) {
	p := &fakePredictor{block: true}
	svc := NewAnalysisService(p, nil, quietLogger(), AnalysisConfig{Timeout: 20 * time.Millisecond})

	_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{Text: "text"})
	assert.ErrorIs(t, err, classifier.ErrModelUnavailable)
}

func TestAnalyze_BadBackendOutput(t *testing.T) {
	p := &fakePredictor{probs: classifier.Probabilities{}}

	_, err := newAnalysis(p, nil).Analyze(context.Background(), &models.AnalysisRequest{Text: "text"})
	assert.ErrorIs(t, err, classifier.ErrModelUnavailable)
}

func TestAnalyze_UnexpectedError(t *testing.T) {
	p := &fakePredictor{err: errors.New("boom")}

	_, err := newAnalysis(p, nil).Analyze(context.Background(), &models.AnalysisRequest{Text: "text"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, classifier.ErrModelUnavailable)
	var vErr *validators.ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestAnalyze_CallerCanceled(t *testing.T) {
	reg := metrics.NewRegistry()
	p := &fakePredictor{block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAnalysis(p, reg).Analyze(ctx, &models.AnalysisRequest{Text: "text"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, classifier.ErrModelUnavailable)
	assert.Zero(t, reg.Get(metrics.ModelFailuresTotal))
	assert.Equal(t, int64(1), reg.Get(metrics.AnalyzeRequestsTotal))
}

func TestHealthCheck(t *testing.T) {
	fixed := time.Date(2025, 11, 10, 14, 30, 0, 0, time.UTC)

	t.Run("Ready", func(t *testing.T) {
		reg := metrics.NewRegistry()
		svc := NewHealthService(&fakePredictor{ready: true}, reg, quietLogger(), HealthConfig{Service: "svc", Version: "1.0.0"})
		svc.now = func() time.Time { return fixed }

		resp, err := svc.Check(context.Background())
		require.NoError(t, err)

		assert.Equal(t, models.StatusHealthy, resp.Status)
		assert.True(t, resp.ModelLoaded)
		assert.True(t, resp.IsReady())
		assert.Equal(t, "2025-11-10T14:30:00.000Z", resp.Timestamp)
		assert.Equal(t, "svc", resp.Service)
		assert.Equal(t, "1.0.0", resp.Version)
		require.NotNil(t, resp.System)
		assert.NotEmpty(t, resp.System.GoVersion)
		assert.Positive(t, resp.System.Goroutines)
		assert.Equal(t, int64(1), reg.Get(metrics.HealthChecksTotal))
	})

	t.Run("NotLoaded", func(t *testing.T) {
		reg := metrics.NewRegistry()
		svc := NewHealthService(&fakePredictor{ready: false}, reg, quietLogger(), HealthConfig{Version: "1.0.0"})

		resp, err := svc.Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.StatusHealthy, resp.Status)
		assert.False(t, resp.ModelLoaded)
		assert.False(t, resp.IsReady())
		assert.Equal(t, int64(1), reg.Get(metrics.ModelNotReadyTotal))
	})

	t.Run("ProbeError", func(t *testing.T) {
		svc := NewHealthService(&fakePredictor{readyErr: errors.New("probe exploded")}, nil, quietLogger(), HealthConfig{})

		resp, err := svc.Check(context.Background())
		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, validators.IsValidUTCTimestamp(svc.Timestamp()))
	})
}
