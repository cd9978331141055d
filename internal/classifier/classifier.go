// Package classifier defines the text-classification capability behind the
// analyze endpoint and its backends.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrModelUnavailable is wrapped by every backend failure that means the
// model could not answer: transport errors, timeouts, bad upstream status.
var ErrModelUnavailable = errors.New("model unavailable")

// Probabilities are class probabilities as fractions in [0,1].
type Probabilities struct {
	Real float64 `json:"real_probability"`
	Fake float64 `json:"fake_probability"`
}

// Predictor classifies preprocessed text.
type Predictor interface {
	// Predict returns normalized probabilities for text.
	Predict(ctx context.Context, text string) (Probabilities, error)
	// Ready reports whether the model can serve requests. A (false, nil)
	// answer means "not loaded"; an error means the probe itself broke.
	Ready(ctx context.Context) (bool, error)
	// Name identifies the backend in logs and cache keys.
	Name() string
}

// Normalize scales p so that Real+Fake == 1. Backends may answer in
// fractions or percentages; both normalize to the same result.
func (p Probabilities) Normalize() (Probabilities, error) {
	if math.IsNaN(p.Real) || math.IsNaN(p.Fake) || math.IsInf(p.Real, 0) || math.IsInf(p.Fake, 0) {
		return Probabilities{}, fmt.Errorf("probabilities are not finite: real=%v fake=%v", p.Real, p.Fake)
	}
	if p.Real < 0 || p.Fake < 0 {
		return Probabilities{}, fmt.Errorf("probabilities must not be negative: real=%v fake=%v", p.Real, p.Fake)
	}

	sum := p.Real + p.Fake
	if sum == 0 {
		return Probabilities{}, errors.New("probabilities sum to zero")
	}

	return Probabilities{Real: p.Real / sum, Fake: p.Fake / sum}, nil
}
