package es

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/study"
)

func TestDocuments(t *testing.T) {
	r := report.New("tuffy")
	c := study.Condition{Dataset: "epinions", WlMethod: "MLE", Evaluator: "Discrete", Acquisition: "random"}
	r.AddPerformance(report.PerformanceRow{Condition: c, Mean: 0.5, StdDev: math.NaN(), Samples: 1})
	r.AddTiming(report.TimingRow{Condition: c, MeanWall: 135, StdDevWall: 2, Samples: 2})

	docs := documents(r)
	require.Len(t, docs, 2)

	perf := docs[0]
	assert.Equal(t, TablePerformance, perf.Table)
	assert.Equal(t, r.RunID.String()+"-performance-0", perf.ID())
	require.NotNil(t, perf.Mean)
	assert.Equal(t, 0.5, *perf.Mean)
	assert.Nil(t, perf.StdDev)

	body, err := json.Marshal(perf)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "standard_deviation")
	assert.Contains(t, string(body), `"acquisition_function":"random"`)

	timing := docs[1]
	assert.Equal(t, TableTiming, timing.Table)
	assert.Equal(t, 135.0, *timing.Mean)
	assert.Equal(t, 2.0, *timing.StdDev)
}

func TestBuildMapping(t *testing.T) {
	m := buildMapping()
	for _, field := range []string{"run_id", "dataset", "evaluator", "wl_method", "acquisition_function", "mean", "standard_deviation", "generated_at"} {
		assert.Contains(t, m.Properties, field)
	}
}
