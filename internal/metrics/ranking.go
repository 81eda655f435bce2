package metrics

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

// ROCAUC is the area under the ROC curve of the predicted scores, with truth
// split at DefaultThreshold. Both classes must be present.
func ROCAUC(predicted, truth, observed, target *frame.Frame) (float64, error) {
	atoms, err := evaluationSet(predicted, truth, observed, target)
	if err != nil {
		return 0, err
	}

	sort.SliceStable(atoms, func(i, j int) bool { return atoms[i].predicted < atoms[j].predicted })

	scores := make([]float64, len(atoms))
	classes := make([]bool, len(atoms))
	var positives int
	for i, a := range atoms {
		scores[i] = a.predicted
		classes[i] = positive(a.truth)
		if classes[i] {
			positives++
		}
	}
	if positives == 0 || positives == len(atoms) {
		return 0, apperr.Malformed("ROC AUC needs both classes, got %d positive of %d %s atoms",
			positives, len(atoms), truth.Predicate)
	}

	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}
