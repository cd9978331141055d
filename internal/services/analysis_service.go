package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/newsverify/api-backend/internal/classifier"
	"github.com/newsverify/api-backend/internal/metrics"
	"github.com/newsverify/api-backend/internal/models"
	"github.com/newsverify/api-backend/internal/preprocess"
	"github.com/newsverify/api-backend/internal/validators"
)

// ErrInvalidResult is returned when a shaped result breaks the response
// invariants. It is an internal error, never a client error.
var ErrInvalidResult = errors.New("invalid analysis result")

// AnalysisConfig bounds a single analysis.
type AnalysisConfig struct {
	Timeout       time.Duration
	MaxTextLength int
}

// AnalysisService turns submitted text into an AnalysisResponse
type AnalysisService struct {
	predictor classifier.Predictor
	metrics   *metrics.Registry
	logger    *slog.Logger
	cfg       AnalysisConfig
	validator validators.AnalysisResultValidator
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(predictor classifier.Predictor, reg *metrics.Registry, logger *slog.Logger, cfg AnalysisConfig) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &AnalysisService{
		predictor: predictor,
		metrics:   reg,
		logger:    logger.With("component", "analysis_service"),
		cfg:       cfg,
	}
}

// Analyze handles the complete analysis flow:
// 1. Validating the text (present, not blank, not too long)
// 2. Preprocessing it
// 3. Predicting with a bounded timeout
// 4. Applying the decision policy
// 5. Checking the response invariants
func (s *AnalysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error) {
	s.metrics.Inc(metrics.AnalyzeRequestsTotal)

	// Step 1: Validate input
	if err := s.validate(req); err != nil {
		s.metrics.Inc(metrics.AnalyzeRejectedTotal)
		return nil, err
	}

	// Step 2: Preprocess. Text made only of symbols normalizes to nothing;
	// the trimmed input is classified instead.
	text := preprocess.Normalize(req.Text)
	if text == "" {
		text = strings.TrimSpace(req.Text)
	}

	// Step 3: Predict
	probs, err := s.predict(ctx, text)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.metrics.Inc(metrics.ModelFailuresTotal)
		}
		return nil, err
	}

	// Step 4: Decide
	verdict := classifier.Decide(probs)
	resp := &models.AnalysisResponse{
		Status:          models.StatusSuccess,
		Prediction:      models.PredictionFake,
		Confidence:      verdict.Confidence,
		RealProbability: verdict.RealProbability,
		FakeProbability: verdict.FakeProbability,
	}
	if verdict.Real {
		resp.Prediction = models.PredictionReal
	}

	// Step 5: Check invariants
	if errs := s.validator.ValidateResult(resp.Prediction, resp.Confidence, resp.RealProbability, resp.FakeProbability,
		models.PredictionReal, models.PredictionFake); validators.HasValidationErrors(errs) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResult, validators.FormatValidationErrors(errs))
	}

	if verdict.Real {
		s.metrics.Inc(metrics.PredictionsRealTotal)
	} else {
		s.metrics.Inc(metrics.PredictionsFakeTotal)
	}

	s.logger.Debug("text analyzed",
		"backend", s.predictor.Name(),
		"prediction", resp.Prediction,
		"confidence", resp.Confidence,
	)
	return resp, nil
}

func (s *AnalysisService) validate(req *models.AnalysisRequest) error {
	if req == nil {
		return validators.NewValidationError("text", validators.MsgNoTextProvided)
	}
	if err := validators.ValidateRequiredText(req.Text, "text"); err != nil {
		return err
	}
	return validators.ValidateTextLength(req.Text, "text", s.cfg.MaxTextLength)
}

// predict calls the backend with the configured timeout. Timeouts and
// backend failures both surface as classifier.ErrModelUnavailable. A caller
// that went away gets context.Canceled back.
func (s *AnalysisService) predict(ctx context.Context, text string) (classifier.Probabilities, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	probs, err := s.predictor.Predict(ctx, text)
	switch {
	case err == nil:
	case errors.Is(err, classifier.ErrModelUnavailable):
		s.logger.Warn("model unavailable", "backend", s.predictor.Name(), "error", err)
		return classifier.Probabilities{}, err
	case errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("prediction timed out", "backend", s.predictor.Name(), "timeout", s.cfg.Timeout)
		return classifier.Probabilities{}, fmt.Errorf("%w: prediction timed out after %s", classifier.ErrModelUnavailable, s.cfg.Timeout)
	case errors.Is(err, context.Canceled):
		s.logger.Debug("prediction canceled", "backend", s.predictor.Name())
		return classifier.Probabilities{}, fmt.Errorf("predict: %w", err)
	default:
		s.logger.Error("prediction failed", "backend", s.predictor.Name(), "error", err)
		return classifier.Probabilities{}, fmt.Errorf("predict: %w", err)
	}

	probs, err = probs.Normalize()
	if err != nil {
		return classifier.Probabilities{}, fmt.Errorf("%w: %v", classifier.ErrModelUnavailable, err)
	}
	return probs, nil
}
