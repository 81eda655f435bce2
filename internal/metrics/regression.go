package metrics

import "github.com/linqs/srinivasan-mlj20/internal/frame"

// MSE is the mean squared difference between predicted and truth values.
func MSE(predicted, truth, observed, target *frame.Frame) (float64, error) {
	atoms, err := evaluationSet(predicted, truth, observed, target)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, a := range atoms {
		d := a.predicted - a.truth
		sum += d * d
	}
	return sum / float64(len(atoms)), nil
}
