// Package truth loads the reference tables a fold is scored against.
package truth

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

// Bundle is the read-only reference data for one (dataset, fold, predicate).
type Bundle struct {
	Truth    *frame.Frame
	Observed *frame.Frame
	Target   *frame.Frame
}

type bundleKey struct {
	dataset   string
	fold      string
	predicate string
}

// Loader reads eval splits under <dataRoot>/<dataset>/<fold>/eval. Bundles are
// cached for the lifetime of the loader since the same split is scored by
// every condition of a dataset.
type Loader struct {
	dataRoot string
	cache    map[bundleKey]*Bundle
}

func NewLoader(dataRoot string) *Loader {
	return &Loader{
		dataRoot: dataRoot,
		cache:    make(map[bundleKey]*Bundle),
	}
}

func (l *Loader) EvalDir(dataset, fold string) string {
	return filepath.Join(l.dataRoot, dataset, fold, "eval")
}

func (l *Loader) TruthPath(dataset, fold, predicate string) string {
	return filepath.Join(l.EvalDir(dataset, fold), predicate+"_truth.txt")
}

func (l *Loader) ObservedPath(dataset, fold, predicate string) string {
	return filepath.Join(l.EvalDir(dataset, fold), predicate+"_obs.txt")
}

func (l *Loader) TargetPath(dataset, fold, predicate string) string {
	return filepath.Join(l.EvalDir(dataset, fold), predicate+"_targets.txt")
}

func (l *Loader) LoadTruth(dataset, fold, predicate string) (*frame.Frame, error) {
	return frame.ReadFile(l.TruthPath(dataset, fold, predicate), predicate, frame.ArgsWithValue)
}

// LoadObserved returns an empty frame when the predicate has no observations
// for this fold.
func (l *Loader) LoadObserved(dataset, fold, predicate string) (*frame.Frame, error) {
	f, err := frame.ReadFile(l.ObservedPath(dataset, fold, predicate), predicate, frame.ArgsWithValue)
	if errors.Is(err, apperr.ErrNotFound) {
		return frame.New(predicate), nil
	}
	return f, err
}

func (l *Loader) LoadTarget(dataset, fold, predicate string) (*frame.Frame, error) {
	return frame.ReadFile(l.TargetPath(dataset, fold, predicate), predicate, frame.ArgsOnly)
}

func (l *Loader) Bundle(dataset, fold, predicate string) (*Bundle, error) {
	key := bundleKey{dataset: dataset, fold: fold, predicate: predicate}
	if b, ok := l.cache[key]; ok {
		return b, nil
	}

	truthFrame, err := l.LoadTruth(dataset, fold, predicate)
	if err != nil {
		return nil, fmt.Errorf("load truth: %w", err)
	}
	observed, err := l.LoadObserved(dataset, fold, predicate)
	if err != nil {
		return nil, fmt.Errorf("load observed: %w", err)
	}
	target, err := l.LoadTarget(dataset, fold, predicate)
	if err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}

	b := &Bundle{Truth: truthFrame, Observed: observed, Target: target}
	l.cache[key] = b
	return b, nil
}

// Cached reports how many bundles are held.
func (l *Loader) Cached() int {
	return len(l.cache)
}
