package classifier

import "math"

const (
	// basisPoints per whole (100.00%)
	basisPoints = 10000

	// realThresholdBP is the single decision threshold: real wins only when
	// it is strictly above 50.00%.
	realThresholdBP = basisPoints / 2
)

// Verdict is a shaped classification result in percentages.
type Verdict struct {
	Real            bool
	Confidence      float64
	RealProbability float64
	FakeProbability float64
}

// Decide rounds normalized probabilities to basis points and applies the
// threshold policy. Confidence is the probability of the chosen class,
// which is always the larger of the two.
func Decide(p Probabilities) Verdict {
	realBP := int(math.Round(p.Real * basisPoints))
	if realBP < 0 {
		realBP = 0
	}
	if realBP > basisPoints {
		realBP = basisPoints
	}
	fakeBP := basisPoints - realBP

	v := Verdict{
		Real:            realBP > realThresholdBP,
		RealProbability: float64(realBP) / 100,
		FakeProbability: float64(fakeBP) / 100,
	}
	if v.Real {
		v.Confidence = v.RealProbability
	} else {
		v.Confidence = v.FakeProbability
	}
	return v
}
