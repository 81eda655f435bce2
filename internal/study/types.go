package study

import "path/filepath"

// Name is the study directory every acquisition experiment lives under.
const Name = "acquisition_study"

// Condition is one point of the experiment grid. Fields are taken verbatim from
// directory names.
type Condition struct {
	Dataset     string `json:"dataset" yaml:"dataset"`
	WlMethod    string `json:"wl_method" yaml:"wl_method"`
	Evaluator   string `json:"evaluator" yaml:"evaluator"`
	Acquisition string `json:"acquisition_function" yaml:"acquisition_function"`
}

// Path is the condition directory relative to the study root.
func (c Condition) Path() string {
	return filepath.Join(c.Dataset, c.WlMethod, c.Evaluator, c.Acquisition)
}

func (c Condition) String() string {
	return filepath.ToSlash(c.Path())
}

// Experiment is a condition together with the folds found under it.
type Experiment struct {
	Condition Condition
	Folds     []string
}
