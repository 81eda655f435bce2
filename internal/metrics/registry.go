// Package metrics scores a prediction frame against the ground-truth bundle of
// its fold.
package metrics

import (
	"sort"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

// Func scores predicted against truth. observed and target narrow the set of
// atoms that are evaluated.
type Func func(predicted, truth, observed, target *frame.Frame) (float64, error)

const (
	Categorical = "Categorical"
	Discrete    = "Discrete"
	Continuous  = "Continuous"
	Ranking     = "Ranking"
)

var registry = map[string]Func{
	Categorical: Accuracy,
	Discrete:    F1,
	Continuous:  MSE,
	Ranking:     ROCAUC,
}

// Lookup returns the metric for an evaluator directory name. Unknown names are
// configuration errors.
func Lookup(evaluator string) (Func, error) {
	fn, ok := registry[evaluator]
	if !ok {
		return nil, apperr.NewConfig("unknown evaluator %q, expected one of %v", evaluator, Names())
	}
	return fn, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
