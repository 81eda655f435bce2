// Package aggregate reduces the folds of each experiment condition to
// performance and timing summaries.
package aggregate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/method"
	"github.com/linqs/srinivasan-mlj20/internal/metrics"
	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/study"
	"github.com/linqs/srinivasan-mlj20/internal/truth"
)

// Reducer scores and times the folds of a condition. Folds that cannot be
// read are reported on skips and left out of the summary; configuration
// errors are returned.
type Reducer struct {
	layout     study.Layout
	adapter    method.Adapter
	truth      *truth.Loader
	properties *study.Properties
	skips      io.Writer
}

type Option func(*Reducer)

// WithSkipWriter sets where skipped folds are reported, one
// "<fold path>: [<kind>] <detail>" line each.
func WithSkipWriter(w io.Writer) Option {
	return func(r *Reducer) {
		r.skips = w
	}
}

func NewReducer(
	layout study.Layout,
	adapter method.Adapter,
	loader *truth.Loader,
	properties *study.Properties,
	opts ...Option,
) *Reducer {
	r := &Reducer{
		layout:     layout,
		adapter:    adapter,
		truth:      loader,
		properties: properties,
		skips:      io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Performance scores every fold of the condition with the evaluator's metric.
func (r *Reducer) Performance(exp study.Experiment) (report.PerformanceRow, error) {
	c := exp.Condition

	score, err := metrics.Lookup(c.Evaluator)
	if err != nil {
		return report.PerformanceRow{}, err
	}
	predicate, err := r.properties.Predicate(c.Dataset)
	if err != nil {
		return report.PerformanceRow{}, err
	}

	values := make([]float64, 0, len(exp.Folds))
	for _, fold := range exp.Folds {
		foldDir := r.layout.FoldDir(c, fold)

		v, err := r.scoreFold(score, c, fold, foldDir, predicate)
		if err != nil {
			if apperr.IsFatal(err) {
				return report.PerformanceRow{}, err
			}
			r.skip(foldDir, err)
			continue
		}
		values = append(values, v)
	}

	s := Summarize(values)
	slog.Debug("condition scored", "condition", c.String(), "folds", len(exp.Folds), "samples", s.Samples, "mean", s.Mean)
	return report.PerformanceRow{
		Condition: c,
		Mean:      s.Mean,
		StdDev:    s.StdDev,
		Samples:   s.Samples,
	}, nil
}

func (r *Reducer) scoreFold(score metrics.Func, c study.Condition, fold, foldDir, predicate string) (float64, error) {
	predicted, err := r.adapter.LoadPredictions(method.PredictionRequest{
		Condition: c,
		Fold:      fold,
		Predicate: predicate,
		Study:     study.Name,
		FoldDir:   foldDir,
	})
	if err != nil {
		return 0, fmt.Errorf("load predictions: %w", err)
	}

	b, err := r.truth.Bundle(c.Dataset, fold, predicate)
	if err != nil {
		return 0, err
	}

	v, err := score(predicted, b.Truth, b.Observed, b.Target)
	if err != nil {
		return 0, fmt.Errorf("%s score: %w", c.Evaluator, err)
	}
	return v, nil
}

// Timing collects the learning time of every fold of the condition.
func (r *Reducer) Timing(exp study.Experiment) report.TimingRow {
	c := exp.Condition

	values := make([]float64, 0, len(exp.Folds))
	for _, fold := range exp.Folds {
		foldDir := r.layout.FoldDir(c, fold)

		secs, err := r.adapter.ExtractTiming(foldDir)
		if err != nil {
			r.skip(foldDir, fmt.Errorf("extract timing: %w", err))
			continue
		}
		values = append(values, secs)
	}

	s := Summarize(values)
	slog.Debug("condition timed", "condition", c.String(), "folds", len(exp.Folds), "samples", s.Samples, "mean_seconds", s.Mean)
	return report.TimingRow{
		Condition:  c,
		MeanWall:   s.Mean,
		StdDevWall: s.StdDev,
		Samples:    s.Samples,
	}
}

func (r *Reducer) skip(foldDir string, err error) {
	var fe *apperr.FoldError
	if !errors.As(err, &fe) {
		fe = apperr.NewFold(foldDir, err)
	}
	fmt.Fprintln(r.skips, fe.Error())
}

// Run reduces experiments into rpt in order. The first configuration error
// aborts the run.
func (r *Reducer) Run(experiments []study.Experiment, rpt *report.Report) error {
	for _, exp := range experiments {
		perf, err := r.Performance(exp)
		if err != nil {
			return fmt.Errorf("condition %s: %w", exp.Condition, err)
		}
		rpt.AddPerformance(perf)
		rpt.AddTiming(r.Timing(exp))
	}
	slog.Info("aggregation complete",
		"method", r.adapter.Name(),
		"conditions", len(experiments),
		"truth_bundles", r.truth.Cached())
	return nil
}
