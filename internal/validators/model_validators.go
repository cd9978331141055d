package validators

import (
	"fmt"
	"math"
)

// probabilityTolerance absorbs float rounding when checking that two
// percentages with two decimals add up to 100.
const probabilityTolerance = 1e-9

// AnalysisResultValidator checks the invariants of an analysis result before it is returned
type AnalysisResultValidator struct{}

// ValidateResult validates prediction label, probability range, the 100% sum
// and that confidence matches the predicted class.
func (v *AnalysisResultValidator) ValidateResult(prediction string, confidence, realProbability, fakeProbability float64, realLabel, fakeLabel string) []error {
	errors := []error{}

	if err := ValidatePercentage(realProbability, "real_probability"); err != nil {
		errors = append(errors, err)
	}
	if err := ValidatePercentage(fakeProbability, "fake_probability"); err != nil {
		errors = append(errors, err)
	}
	if err := ValidatePercentage(confidence, "confidence"); err != nil {
		errors = append(errors, err)
	}

	if sum := realProbability + fakeProbability; math.Abs(sum-100) > probabilityTolerance {
		errors = append(errors, NewValidationError("probabilities", fmt.Sprintf("real and fake probabilities must sum to 100 (got: %f)", sum)))
	}

	switch prediction {
	case realLabel:
		if confidence != realProbability {
			errors = append(errors, NewValidationError("confidence", "confidence must equal real_probability for a real prediction"))
		}
	case fakeLabel:
		if confidence != fakeProbability {
			errors = append(errors, NewValidationError("confidence", "confidence must equal fake_probability for a fake prediction"))
		}
	default:
		errors = append(errors, NewValidationError("prediction", fmt.Sprintf("invalid prediction (allowed: %s, %s)", realLabel, fakeLabel)))
	}

	return errors
}

// Helper function to collect and format multiple validation errors
func FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return ""
	}

	if len(errors) == 1 {
		return errors[0].Error()
	}

	result := "validation errors:\n"
	for i, err := range errors {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// HasValidationErrors checks if there are any validation errors
func HasValidationErrors(errors []error) bool {
	return len(errors) > 0
}
