package metrics

import (
	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

// DefaultThreshold splits truth values and predictions into positive and
// negative classes.
const DefaultThreshold = 0.5

type scoredAtom struct {
	key       frame.Key
	predicted float64
	truth     float64
}

// evaluationSet collects the atoms to score: target atoms (all truth atoms
// when there are no targets) that have a truth value and are not observed.
// Atoms missing from predicted count as 0.
func evaluationSet(predicted, truth, observed, target *frame.Frame) ([]scoredAtom, error) {
	source := truth
	if target != nil && target.Len() > 0 {
		source = target
	}

	var atoms []scoredAtom
	for _, k := range source.SortedKeys() {
		tv, ok := truth.Get(k)
		if !ok {
			continue
		}
		if observed != nil && observed.Has(k) {
			continue
		}
		atoms = append(atoms, scoredAtom{key: k, predicted: predicted.Value(k), truth: tv})
	}

	if len(atoms) == 0 {
		return nil, apperr.Empty("no %s atoms to evaluate", truth.Predicate)
	}
	return atoms, nil
}

func positive(v float64) bool {
	return v >= DefaultThreshold
}
