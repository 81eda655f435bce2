package es

import (
	"fmt"
	"math"
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"

	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/study"
)

const (
	TablePerformance = "performance"
	TableTiming      = "timing"
)

// Document is one report row. Statistics without a value are left out of the
// source.
type Document struct {
	RunID       string    `json:"run_id"`
	Method      string    `json:"method"`
	Table       string    `json:"table"`
	Position    int       `json:"position"`
	Dataset     string    `json:"dataset"`
	Evaluator   string    `json:"evaluator"`
	WlMethod    string    `json:"wl_method"`
	Acquisition string    `json:"acquisition_function"`
	Mean        *float64  `json:"mean,omitempty"`
	StdDev      *float64  `json:"standard_deviation,omitempty"`
	Samples     int       `json:"samples"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (d Document) ID() string {
	return fmt.Sprintf("%s-%s-%d", d.RunID, d.Table, d.Position)
}

func documents(r *report.Report) []Document {
	docs := make([]Document, 0, len(r.Performance)+len(r.Timing))
	for i, row := range r.Performance {
		docs = append(docs, newDocument(r, TablePerformance, i, row.Condition, row.Mean, row.StdDev, row.Samples))
	}
	for i, row := range r.Timing {
		docs = append(docs, newDocument(r, TableTiming, i, row.Condition, row.MeanWall, row.StdDevWall, row.Samples))
	}
	return docs
}

func newDocument(r *report.Report, table string, pos int, c study.Condition, mean, std float64, samples int) Document {
	return Document{
		RunID:       r.RunID.String(),
		Method:      r.Method,
		Table:       table,
		Position:    pos,
		Dataset:     c.Dataset,
		Evaluator:   c.Evaluator,
		WlMethod:    c.WlMethod,
		Acquisition: c.Acquisition,
		Mean:        finite(mean),
		StdDev:      finite(std),
		Samples:     samples,
		GeneratedAt: r.GeneratedAt,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"run_id":               types.NewKeywordProperty(),
			"method":               types.NewKeywordProperty(),
			"table":                types.NewKeywordProperty(),
			"position":             types.NewIntegerNumberProperty(),
			"dataset":              types.NewKeywordProperty(),
			"evaluator":            types.NewKeywordProperty(),
			"wl_method":            types.NewKeywordProperty(),
			"acquisition_function": types.NewKeywordProperty(),
			"mean":                 types.NewDoubleNumberProperty(),
			"standard_deviation":   types.NewDoubleNumberProperty(),
			"samples":              types.NewIntegerNumberProperty(),
			"generated_at":         types.NewDateProperty(),
		},
	}
}
