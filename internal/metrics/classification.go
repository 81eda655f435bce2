package metrics

import (
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

// Accuracy groups atoms by entity (every argument but the last) and counts
// the entities whose highest-scoring predicted label matches the highest
// truth label. Ties go to the lexically first label.
func Accuracy(predicted, truth, observed, target *frame.Frame) (float64, error) {
	atoms, err := evaluationSet(predicted, truth, observed, target)
	if err != nil {
		return 0, err
	}

	type best struct {
		predKey, truthKey frame.Key
		predVal, truthVal float64
	}
	byEntity := make(map[frame.Key]*best)
	var order []frame.Key

	for _, a := range atoms {
		entity := a.key.Entity()
		b, ok := byEntity[entity]
		if !ok {
			byEntity[entity] = &best{predKey: a.key, truthKey: a.key, predVal: a.predicted, truthVal: a.truth}
			order = append(order, entity)
			continue
		}
		if a.predicted > b.predVal {
			b.predKey, b.predVal = a.key, a.predicted
		}
		if a.truth > b.truthVal {
			b.truthKey, b.truthVal = a.key, a.truth
		}
	}

	var correct int
	for _, entity := range order {
		if b := byEntity[entity]; b.predKey == b.truthKey {
			correct++
		}
	}

	return float64(correct) / float64(len(order)), nil
}

// F1 is the harmonic mean of precision and recall of the positive class, with
// both truth and predictions split at DefaultThreshold.
func F1(predicted, truth, observed, target *frame.Frame) (float64, error) {
	atoms, err := evaluationSet(predicted, truth, observed, target)
	if err != nil {
		return 0, err
	}

	var tp, fp, fn int
	for _, a := range atoms {
		p, t := positive(a.predicted), positive(a.truth)
		switch {
		case p && t:
			tp++
		case p && !t:
			fp++
		case !p && t:
			fn++
		}
	}

	if tp == 0 {
		return 0, nil
	}

	precision := float64(tp) / float64(tp+fp)
	recall := float64(tp) / float64(tp+fn)
	return 2 * precision * recall / (precision + recall), nil
}
