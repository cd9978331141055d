package models

// Prediction labels
const (
	PredictionReal = "Real News"
	PredictionFake = "Fake News"
)

// AnalysisRequest is the body accepted by POST /api/analyze
type AnalysisRequest struct {
	Text string `json:"text" example:"Breaking: markets rally on strong earnings"`
}

// AnalysisResponse is the classification result.
// Probabilities are percentages with two decimals; real + fake == 100 and
// confidence is the probability of the predicted class.
type AnalysisResponse struct {
	Status          string  `json:"status" example:"success"`
	Prediction      string  `json:"prediction" example:"Real News"`
	Confidence      float64 `json:"confidence" example:"73.47"`
	RealProbability float64 `json:"real_probability" example:"73.47"`
	FakeProbability float64 `json:"fake_probability" example:"26.53"`
}

// IsReal returns true if the prediction is "Real News"
func (r *AnalysisResponse) IsReal() bool {
	return r.Prediction == PredictionReal
}
