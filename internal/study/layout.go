package study

import "path/filepath"

// Layout resolves every path of a study run from the project base directory:
//
//	<base>/results/weightlearning/<method>/acquisition_study/<dataset>/<wl>/<evaluator>/<acq>/<fold>
//	<base>/data/<dataset>/<fold>/eval
type Layout struct {
	Base   string
	Method string
}

func NewLayout(base, method string) Layout {
	return Layout{Base: base, Method: method}
}

// Root is the acquisition study directory for the method.
func (l Layout) Root() string {
	return filepath.Join(l.Base, "results", "weightlearning", l.Method, Name)
}

func (l Layout) DataRoot() string {
	return filepath.Join(l.Base, "data")
}

func (l Layout) ConditionDir(c Condition) string {
	return filepath.Join(l.Root(), c.Path())
}

func (l Layout) FoldDir(c Condition, fold string) string {
	return filepath.Join(l.ConditionDir(c), fold)
}

func (l Layout) PerformancePath() string {
	return filepath.Join(l.Root(), l.Method+"_performance.csv")
}

func (l Layout) TimingPath() string {
	return filepath.Join(l.Root(), l.Method+"_timing.csv")
}
